package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinitionNameFromRef(t *testing.T) {
	tests := []struct {
		ref     string
		name    string
		wantErr bool
	}{
		{"#/definitions/Pet", "Pet", false},
		{"#/definitions/User_1", "User_1", false},
		{"#/definitions/", "", true},
		{"#/definitions/a/b", "", true},
		{"Pet", "", true},
		{"#/parameters/limit", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			name, err := DefinitionNameFromRef(tt.ref)
			if tt.wantErr {
				var resErr *ResolutionError
				require.ErrorAs(t, err, &resErr)
				require.Equal(t, tt.ref, resErr.Ref)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.name, name)
		})
	}
}

func TestParameterNameFromRef(t *testing.T) {
	name, err := ParameterNameFromRef("#/parameters/limitParam")
	require.NoError(t, err)
	require.Equal(t, "limitParam", name)

	_, err = ParameterNameFromRef("#/definitions/Pet")
	var resErr *ResolutionError
	require.ErrorAs(t, err, &resErr)
}

package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalOmitsEmptyFields(t *testing.T) {
	n := &Interface{
		Base: Base{Start: 0, End: 15},
		Name: "A",
	}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":0,"end":15,"name":"A"}`, string(data))
}

func TestMarshalNullableType(t *testing.T) {
	n := &PrimitiveType{
		TypeInfo: TypeInfo{Base: Base{Start: 8, End: 13}, Nullable: true},
		Name:     "long",
	}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":8,"end":13,"nullable":true,"name":"long"}`, string(data))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdentityID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "snowflake", id: "80351110224678912", want: true},
		{name: "short", id: "42", want: true},
		{name: "empty", id: "", want: false},
		{name: "path segments", id: "777/roles/admin-role?x=", want: false},
		{name: "traversal", id: "../../42", want: false},
		{name: "signed", id: "+42", want: false},
		{name: "decimal", id: "4.2", want: false},
		{name: "encoded slash", id: "777%2Froles", want: false},
		{name: "too long", id: "123456789012345678901", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsIdentityID(tt.id))
		})
	}
}

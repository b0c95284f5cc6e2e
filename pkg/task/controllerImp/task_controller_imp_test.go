package controllerImp

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"farmmate/pkg/task/service"
)

func TestBulkStatus(t *testing.T) {
	cases := []struct {
		name string
		res  service.BulkResult
		want int
	}{
		{"all created", service.BulkResult{Created: 3}, http.StatusCreated},
		{"partial", service.BulkResult{Created: 2, Failed: 1}, http.StatusMultiStatus},
		{"none created", service.BulkResult{Failed: 2}, http.StatusUnprocessableEntity},
		{"empty", service.BulkResult{}, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BulkStatus(tc.res))
		})
	}
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCreateCustomerRequestValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		req         CreateCustomerRequest
		wantFields  []string
		wantMessage map[string]string
	}{
		{
			name: "valid request",
			req: CreateCustomerRequest{
				Name:        "Ana Cruz",
				Email:       "ana@x.com",
				Phone:       "5551234567",
				Address:     "Main St",
				Nationality: "MX",
			},
		},
		{
			name:       "everything missing",
			req:        CreateCustomerRequest{},
			wantFields: []string{"name", "email", "phone", "address", "nationality"},
			wantMessage: map[string]string{
				"name": "missing required field",
			},
		},
		{
			name: "name too short",
			req: CreateCustomerRequest{
				Name:        "An",
				Email:       "ana@x.com",
				Phone:       "5551234567",
				Address:     "Main St",
				Nationality: "MX",
			},
			wantFields: []string{"name"},
			wantMessage: map[string]string{
				"name": "shorter than minimum length 3",
			},
		},
		{
			name: "bad email",
			req: CreateCustomerRequest{
				Name:        "Ana Cruz",
				Email:       "not-an-email",
				Phone:       "5551234567",
				Address:     "Main St",
				Nationality: "MX",
			},
			wantFields: []string{"email"},
			wantMessage: map[string]string{
				"email": "not a valid email address",
			},
		},
		{
			name: "phone too short",
			req: CreateCustomerRequest{
				Name:        "Ana Cruz",
				Email:       "ana@x.com",
				Phone:       "555123",
				Address:     "Main St",
				Nationality: "MX",
			},
			wantFields: []string{"phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			fields := ErrorMap(err)
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
			for f, msg := range tt.wantMessage {
				assert.Equal(t, msg, fields[f])
			}
		})
	}
}

func TestUpdateCustomerRequestPartialValidation(t *testing.T) {
	v := New()

	t.Run("empty update passes", func(t *testing.T) {
		assert.NoError(t, v.Struct(UpdateCustomerRequest{}))
	})

	t.Run("absent fields are not re-checked", func(t *testing.T) {
		req := UpdateCustomerRequest{Address: strPtr("New Address 42")}
		assert.NoError(t, v.Struct(req))
	})

	t.Run("present field must satisfy create rules", func(t *testing.T) {
		req := UpdateCustomerRequest{Email: strPtr("nope")}
		err := v.Struct(req)
		assert.Error(t, err)
		assert.Contains(t, ErrorMap(err), "email")
	})

	t.Run("short name rejected", func(t *testing.T) {
		req := UpdateCustomerRequest{Name: strPtr("Jo")}
		err := v.Struct(req)
		assert.Error(t, err)
		assert.Contains(t, ErrorMap(err), "name")
	})
}

func TestCreateOrderRequestValidation(t *testing.T) {
	v := New()

	t.Run("valid date", func(t *testing.T) {
		assert.NoError(t, v.Struct(CreateOrderRequest{Date: "2024-01-10"}))
	})

	t.Run("missing date", func(t *testing.T) {
		err := v.Struct(CreateOrderRequest{})
		assert.Error(t, err)
		assert.Equal(t, "missing required field", ErrorMap(err)["date"])
	})

	t.Run("wrong format", func(t *testing.T) {
		err := v.Struct(CreateOrderRequest{Date: "10/01/2024"})
		assert.Error(t, err)
		assert.Contains(t, ErrorMap(err)["date"], "YYYY-MM-DD")
	})
}

func TestCreateItemRequestValidation(t *testing.T) {
	v := New()

	t.Run("valid measurements", func(t *testing.T) {
		req := CreateItemRequest{Width: floatPtr(2.0), Length: floatPtr(3.0)}
		assert.NoError(t, v.Struct(req))
	})

	t.Run("missing width", func(t *testing.T) {
		req := CreateItemRequest{Length: floatPtr(3.0)}
		err := v.Struct(req)
		assert.Error(t, err)
		assert.Contains(t, ErrorMap(err), "width")
	})

	t.Run("zero length rejected", func(t *testing.T) {
		req := CreateItemRequest{Width: floatPtr(2.0), Length: floatPtr(0)}
		err := v.Struct(req)
		assert.Error(t, err)
		assert.Equal(t, "must be greater than 0", ErrorMap(err)["length"])
	})

	t.Run("negative width rejected", func(t *testing.T) {
		req := CreateItemRequest{Width: floatPtr(-1.5), Length: floatPtr(3.0)}
		err := v.Struct(req)
		assert.Error(t, err)
		assert.Contains(t, ErrorMap(err), "width")
	})
}

package validation

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Bind decodes the JSON body into out and validates it. On failure it
// returns the details to render in the error body: a plain string for a
// malformed body, or a field -> message map for validation failures.
func Bind(c *gin.Context, out interface{}, v *validatorv10.Validate) (interface{}, bool) {
	if err := c.ShouldBindJSON(out); err != nil {
		return "invalid request body: " + err.Error(), false
	}

	if err := v.Struct(out); err != nil {
		return ErrorMap(err), false
	}

	return nil, true
}

package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

type Decoder struct{}

// DecodeJSONPayload strictly decodes the request body into object and
// runs its validation rules when it has any.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

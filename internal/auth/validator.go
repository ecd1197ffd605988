package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Validator delega la verificación de credenciales a la función
// externa en la nube. El servicio no conoce la contraseña del admin.
type Validator struct {
	url        string
	httpClient *http.Client
}

func NewValidator(url string) *Validator {
	return &Validator{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type validateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// Validate retorna true solo si la función externa responde 2xx
// con {"valid": true}
func (v *Validator) Validate(ctx context.Context, username, password string) (bool, error) {
	payload, err := json.Marshal(validateRequest{Username: username, Password: password})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, nil
	}

	var result validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}

	return result.Valid, nil
}

package delhivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// UpstreamError conserva el estado y el cuerpo original de Delhivery
// para retransmitirlos tal cual al cliente
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("delhivery upstream error: status %d", e.Status)
}

// EstimateParams son los parámetros ya validados y con defaults
// aplicados para la cotización de envío
type EstimateParams struct {
	FromPincode string
	ToPincode   string
	WeightGrams int64
	PaymentType string
	BillingMode string
}

// Client habla con la API REST de Delhivery. Las URLs base son
// inyectables para poder apuntar a staging o a un servidor de prueba.
type Client struct {
	token      string
	heavyBase  string
	trackBase  string
	httpClient *http.Client
}

func NewClient(token, heavyBase, trackBase string) *Client {
	return &Client{
		token:     token,
		heavyBase: heavyBase,
		trackBase: trackBase,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PincodeHeavyServiceability consulta la cobertura de productos
// pesados para un pincode
func (c *Client) PincodeHeavyServiceability(ctx context.Context, pincode string) (map[string]interface{}, error) {
	u, err := url.Parse(c.heavyBase + "/api/dc/fetch/serviceability/pincode")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("pincode", pincode)
	q.Set("product_type", "Heavy")
	u.RawQuery = q.Encode()

	return c.getJSON(ctx, u.String())
}

// PincodeLookup consulta los datos de un pincode
func (c *Client) PincodeLookup(ctx context.Context, pincode string) (interface{}, error) {
	u, err := url.Parse(c.trackBase + "/c/api/pin-codes/json/")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("filter_codes", pincode)
	u.RawQuery = q.Encode()

	var data interface{}
	if err := c.do(ctx, u.String(), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ShippingEstimate cotiza el costo de envío
func (c *Client) ShippingEstimate(ctx context.Context, p EstimateParams) (interface{}, error) {
	u, err := url.Parse(c.trackBase + "/api/kinko/v1/invoice/charges/.json")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("md", p.BillingMode)
	q.Set("ss", "Delivered")
	q.Set("o_pin", p.FromPincode)
	q.Set("d_pin", p.ToPincode)
	q.Set("cgm", fmt.Sprintf("%d", p.WeightGrams))
	q.Set("pt", p.PaymentType)
	u.RawQuery = q.Encode()

	var data interface{}
	if err := c.do(ctx, u.String(), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string) (map[string]interface{}, error) {
	var data map[string]interface{}
	if err := c.do(ctx, rawURL, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// do ejecuta el GET con el token y decodifica la respuesta.
// Un estado no-2xx se retorna como UpstreamError con el cuerpo crudo.
func (c *Client) do(ctx context.Context, rawURL string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text := string(body)
		if text == "" {
			text = "Delhivery error"
		}
		return &UpstreamError{Status: resp.StatusCode, Body: text}
	}

	return json.Unmarshal(body, target)
}

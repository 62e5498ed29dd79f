package worldpay_cg_hosted

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/hugochinchilla79/worldpay_cg_hosted_sdk/models"
)

// RedirectURLs are appended to the hosted payment page so the shopper
// returns to the merchant after paying.
type RedirectURLs struct {
	Success string
	Failure string
	Cancel  string
}

// ParsePurchaseResponse decodes the reply to an order submission. The reply
// is either an orderStatus carrying a reference to the hosted payment page,
// or an error.
func ParsePurchaseResponse(body []byte, urls RedirectURLs) (models.PurchaseResponse, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return models.PurchaseResponse{}, fmt.Errorf("parse reply xml: %w", err)
	}
	reply := findChild(doc.Root(), "reply")
	if reply == nil {
		return models.PurchaseResponse{}, errors.New("reply element missing")
	}

	var resp models.PurchaseResponse
	errEl := findChild(reply, "error")

	if status := findChild(reply, "orderStatus"); status != nil {
		resp.TransactionID, _ = attrValue(status, "orderCode")
		if errEl == nil {
			errEl = findChild(status, "error")
		}
		if ref := findChild(status, "reference"); ref != nil && errEl == nil {
			resp.TransactionReference, _ = attrValue(ref, "id")
			redirect, err := redirectURL(ref.Text(), urls)
			if err != nil {
				return models.PurchaseResponse{}, err
			}
			resp.RedirectURL = redirect
		}
	}

	if errEl != nil {
		resp.Code, _ = attrValue(errEl, "code")
		resp.Message = strings.TrimSpace(errEl.Text())
	}
	return resp, nil
}

func redirectURL(reference string, urls RedirectURLs) (string, error) {
	u, err := url.Parse(strings.TrimSpace(reference))
	if err != nil {
		return "", fmt.Errorf("parse redirect reference: %w", err)
	}
	q := u.Query()
	if urls.Success != "" {
		q.Set("successURL", urls.Success)
	}
	if urls.Failure != "" {
		q.Set("failureURL", urls.Failure)
	}
	if urls.Cancel != "" {
		q.Set("cancelURL", urls.Cancel)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

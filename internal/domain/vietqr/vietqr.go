// Package vietqr builds image URLs for the img.vietqr.io rendering service.
package vietqr

import (
	"net/url"

	"github.com/shopspring/decimal"
)

const (
	BaseURL = "https://img.vietqr.io/image/"

	// VietcombankBIN identifies Vietcombank in the VietQR network.
	VietcombankBIN  = "970436"
	TemplateCompact = "compact"

	ParamAmount      = "amount"
	ParamAddInfo     = "addInfo"
	ParamAccountName = "accountName"
)

// Params describe one QR image. Zero values are left out of the URL.
type Params struct {
	BankID      string
	AccountNum  string
	Template    string
	Amount      decimal.Decimal
	AddInfo     string
	AccountName string
}

// BuildURL composes the image URL for p. BankID and Template default to
// VietcombankBIN and TemplateCompact.
func BuildURL(p Params) string {
	bankID := p.BankID
	if bankID == "" {
		bankID = VietcombankBIN
	}
	template := p.Template
	if template == "" {
		template = TemplateCompact
	}

	u := BaseURL + url.PathEscape(bankID+"-"+p.AccountNum+"-"+template+".png")

	q := url.Values{}
	if p.Amount.IsPositive() {
		q.Set(ParamAmount, p.Amount.String())
	}
	if p.AddInfo != "" {
		q.Set(ParamAddInfo, p.AddInfo)
	}
	if p.AccountName != "" {
		q.Set(ParamAccountName, p.AccountName)
	}
	if len(q) == 0 {
		return u
	}
	return u + "?" + q.Encode()
}

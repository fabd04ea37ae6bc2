// Package i18n holds the localized strings shown on the receive screen.
package i18n

type Receive struct {
	Title       string `yaml:"title"`
	AmountPlace string `yaml:"amountPlace"`
	Placeholder string `yaml:"placeholder"`
	Copy        string `yaml:"copy"`
	Copied      string `yaml:"copied"`
	Back        string `yaml:"back"`
	BankName    string `yaml:"bankName"`
}

type Translations struct {
	Receive Receive `yaml:"receive"`
}

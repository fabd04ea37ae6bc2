package qrcode

//go:generate mockgen -destination=../../usecase/generateqr/mocks/generator.go -package=mocks . Generator

// Generator renders arbitrary text content as a PNG QR code.
type Generator interface {
	Generate(content string) ([]byte, error)
}

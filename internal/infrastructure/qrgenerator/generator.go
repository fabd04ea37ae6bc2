package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"
)

type Generator struct {
	size  int
	level qr.RecoveryLevel
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size, level: qr.Medium}
}

func (g *Generator) Generate(content string) ([]byte, error) {
	return qr.Encode(content, g.level, g.size)
}

// Text renders content as a compact block-character QR for terminals.
func (g *Generator) Text(content string, inverse bool) (string, error) {
	code, err := qr.New(content, g.level)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(inverse), nil
}

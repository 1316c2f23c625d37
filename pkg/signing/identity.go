package signing

import (
	"bytes"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	gop12 "software.sslmate.com/src/go-pkcs12"
)

// Identity is a signing certificate and the team it belongs to.
type Identity struct {
	Certificate *x509.Certificate
	TeamID      string
}

// LoadIdentity reads a signing certificate from a PKCS#12 blob or a
// PEM-encoded certificate. The team ID comes from the certificate's subject
// organizational unit.
func LoadIdentity(data []byte, password string) (*Identity, error) {
	if bytes.HasPrefix(data, []byte("-----BEGIN")) {
		return loadPEMIdentity(data)
	}

	_, cert, _, err := gop12.DecodeChain(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decode P12: %w", err)
	}

	return &Identity{
		Certificate: cert,
		TeamID:      teamIDFromCert(cert),
	}, nil
}

func loadPEMIdentity(pemData []byte) (*Identity, error) {
	for block, rest := pem.Decode(pemData); block != nil; block, rest = pem.Decode(rest) {
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PEM certificate: %w", err)
		}
		return &Identity{
			Certificate: cert,
			TeamID:      teamIDFromCert(cert),
		}, nil
	}
	return nil, fmt.Errorf("no certificate found in PEM data")
}

// teamIDFromCert extracts the Apple team ID from a signing certificate.
// Apple puts the 10-character team ID in the subject organizational unit.
func teamIDFromCert(cert *x509.Certificate) string {
	for _, ou := range cert.Subject.OrganizationalUnit {
		if len(ou) == 10 && isAlphanumeric(ou) {
			return ou
		}
	}
	return ""
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

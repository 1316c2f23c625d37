package signing

import (
	"testing"
	"time"

	"go.mozilla.org/pkcs7"
	"howett.net/plist"
)

// newTestProfile builds a CMS-signed .mobileprovision the way Apple does:
// a plist payload inside a PKCS#7 signed container.
func newTestProfile(t *testing.T, payload map[string]interface{}) []byte {
	t.Helper()

	plistData, err := plist.Marshal(payload, plist.XMLFormat)
	if err != nil {
		t.Fatalf("Failed to marshal profile plist: %v", err)
	}

	cert, key := newTestCertificate(t, "AB12CD34EF")

	sd, err := pkcs7.NewSignedData(plistData)
	if err != nil {
		t.Fatalf("Failed to create signed data: %v", err)
	}
	if err := sd.AddSigner(cert, key, pkcs7.SignerInfoConfig{}); err != nil {
		t.Fatalf("Failed to add signer: %v", err)
	}

	data, err := sd.Finish()
	if err != nil {
		t.Fatalf("Failed to finish signed data: %v", err)
	}
	return data
}

func TestParseProfile(t *testing.T) {
	cert, _ := newTestCertificate(t, "AB12CD34EF")

	data := newTestProfile(t, map[string]interface{}{
		"Name":                        "Example Distribution",
		"TeamName":                    "Example Corp",
		"TeamIdentifier":              []string{"AB12CD34EF"},
		"AppIDName":                   "Example App",
		"ApplicationIdentifierPrefix": []string{"AB12CD34EF"},
		"UUID":                        "f3c9e6a2-8b7d-4a3e-9c1f-2d5b8e7a6c4d",
		"CreationDate":                time.Now().Add(-time.Hour),
		"ExpirationDate":              time.Now().Add(365 * 24 * time.Hour),
		"Entitlements": map[string]interface{}{
			"application-identifier": "AB12CD34EF.com.example.myapp",
			"get-task-allow":         false,
		},
		"DeveloperCertificates": [][]byte{cert.Raw},
	})

	profile, err := ParseProfile(data)
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	if profile.Name != "Example Distribution" {
		t.Errorf("Name = %q, want %q", profile.Name, "Example Distribution")
	}
	if profile.TeamID() != "AB12CD34EF" {
		t.Errorf("TeamID = %q, want %q", profile.TeamID(), "AB12CD34EF")
	}
	if profile.ApplicationIdentifier() != "AB12CD34EF.com.example.myapp" {
		t.Errorf("ApplicationIdentifier = %q, want %q",
			profile.ApplicationIdentifier(), "AB12CD34EF.com.example.myapp")
	}
	if profile.IsExpired() {
		t.Error("Profile should not be expired")
	}

	certs, err := profile.Certificates()
	if err != nil {
		t.Fatalf("Certificates failed: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("Expected 1 certificate, got %d", len(certs))
	}
	if certs[0].Subject.CommonName != cert.Subject.CommonName {
		t.Errorf("Certificate subject = %q, want %q",
			certs[0].Subject.CommonName, cert.Subject.CommonName)
	}
}

func TestParseProfileInvalidData(t *testing.T) {
	if _, err := ParseProfile([]byte("not a profile")); err == nil {
		t.Fatal("Expected error for invalid data")
	}
}

func TestProfileTeamIDFallback(t *testing.T) {
	profile := &Profile{
		ApplicationIdentifierPrefix: []string{"FALLBACK12"},
	}
	if got := profile.TeamID(); got != "FALLBACK12" {
		t.Errorf("TeamID = %q, want fallback to prefix %q", got, "FALLBACK12")
	}

	profile.TeamIdentifier = []string{"AB12CD34EF"}
	if got := profile.TeamID(); got != "AB12CD34EF" {
		t.Errorf("TeamID = %q, want %q", got, "AB12CD34EF")
	}
}

func TestProfileIsExpired(t *testing.T) {
	profile := &Profile{ExpirationDate: time.Now().Add(-time.Hour)}
	if !profile.IsExpired() {
		t.Error("Profile with past expiration should be expired")
	}

	profile.ExpirationDate = time.Now().Add(time.Hour)
	if profile.IsExpired() {
		t.Error("Profile with future expiration should not be expired")
	}
}

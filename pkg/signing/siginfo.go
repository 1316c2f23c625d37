package signing

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/blacktop/go-macho"
	"go.mozilla.org/pkcs7"
)

// Code signature constants from Apple's cs_blobs.h.
const (
	CSMAGIC_EMBEDDED_SIGNATURE = 0xfade0cc0
	CSMAGIC_CODEDIRECTORY      = 0xfade0c02

	CSSLOT_CODEDIRECTORY             = 0
	CSSLOT_ALTERNATE_CODEDIRECTORIES = 0x1000
	CSSLOT_CMS_SIGNATURE             = 0x10000

	LC_CODE_SIGNATURE = 0x1d
	FAT_MAGIC         = 0xcafebabe
)

// TeamIDFromBundle returns the team ID a .app bundle's main executable was
// signed with.
func TeamIDFromBundle(appPath string) (string, error) {
	execPath, err := ExecutablePath(appPath)
	if err != nil {
		return "", err
	}
	return TeamIDFromBinary(execPath)
}

// TeamIDFromBinary returns the team ID a Mach-O binary was signed with. The
// team ID comes from the signature's CodeDirectory, falling back to the CMS
// signer certificate when the CodeDirectory carries none.
func TeamIDFromBinary(binaryPath string) (string, error) {
	data, err := os.ReadFile(binaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to read binary: %w", err)
	}

	sig, err := signatureBlob(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", binaryPath, err)
	}

	return teamIDFromSignature(sig)
}

// signatureBlob extracts the LC_CODE_SIGNATURE payload from a thin or fat
// Mach-O image.
func signatureBlob(data []byte) ([]byte, error) {
	slice := data
	if len(data) >= 24 && binary.BigEndian.Uint32(data[:4]) == FAT_MAGIC {
		// Fat binary: take the first architecture slice.
		offset := binary.BigEndian.Uint32(data[16:20])
		size := binary.BigEndian.Uint32(data[20:24])
		if offset+size <= uint32(len(data)) {
			slice = data[offset : offset+size]
		}
	}

	if m, err := macho.NewFile(bytes.NewReader(slice)); err == nil {
		for _, load := range m.Loads {
			if cs, ok := load.(*macho.CodeSignature); ok {
				if cs.Offset+cs.Size <= uint32(len(slice)) {
					blob := slice[cs.Offset : cs.Offset+cs.Size]
					m.Close()
					return blob, nil
				}
			}
		}
		m.Close()
	}

	// go-macho chokes on some signed binaries; walk the load commands
	// directly.
	offset, size, found := findCodeSignatureOffset(slice)
	if !found {
		return nil, fmt.Errorf("no code signature found")
	}
	if offset+size > uint32(len(slice)) {
		return nil, fmt.Errorf("code signature extends beyond file")
	}
	return slice[offset : offset+size], nil
}

// findCodeSignatureOffset finds the LC_CODE_SIGNATURE offset and size
// without a full Mach-O parse.
func findCodeSignatureOffset(data []byte) (offset, size uint32, found bool) {
	if len(data) < 32 {
		return 0, 0, false
	}

	var headerSize uint32
	switch binary.LittleEndian.Uint32(data[:4]) {
	case 0xfeedfacf: // MH_MAGIC_64
		headerSize = 32
	case 0xfeedface: // MH_MAGIC
		headerSize = 28
	default:
		return 0, 0, false
	}

	var ncmds, sizeofcmds uint32
	if headerSize == 32 {
		ncmds = binary.LittleEndian.Uint32(data[16:20])
		sizeofcmds = binary.LittleEndian.Uint32(data[20:24])
	} else {
		ncmds = binary.LittleEndian.Uint32(data[12:16])
		sizeofcmds = binary.LittleEndian.Uint32(data[16:20])
	}

	if uint32(len(data)) < headerSize+sizeofcmds {
		return 0, 0, false
	}

	cmdOffset := headerSize
	for i := uint32(0); i < ncmds; i++ {
		if cmdOffset+8 > headerSize+sizeofcmds {
			break
		}
		cmd := binary.LittleEndian.Uint32(data[cmdOffset:])
		cmdSize := binary.LittleEndian.Uint32(data[cmdOffset+4:])

		if cmd == LC_CODE_SIGNATURE && cmdSize >= 16 {
			sigOffset := binary.LittleEndian.Uint32(data[cmdOffset+8:])
			sigSize := binary.LittleEndian.Uint32(data[cmdOffset+12:])
			return sigOffset, sigSize, true
		}
		if cmdSize == 0 {
			break
		}
		cmdOffset += cmdSize
	}

	return 0, 0, false
}

// teamIDFromSignature walks a SuperBlob and returns the signing team ID.
func teamIDFromSignature(sig []byte) (string, error) {
	if len(sig) < 12 {
		return "", fmt.Errorf("signature data too short")
	}

	if binary.BigEndian.Uint32(sig[0:4]) != CSMAGIC_EMBEDDED_SIGNATURE {
		return "", fmt.Errorf("invalid SuperBlob magic: 0x%x", binary.BigEndian.Uint32(sig[0:4]))
	}

	blobCount := binary.BigEndian.Uint32(sig[8:12])
	if uint32(len(sig)) < 12+blobCount*8 {
		return "", fmt.Errorf("signature data too short for blob index")
	}

	var cmsBlob []byte
	for i := uint32(0); i < blobCount; i++ {
		entryOffset := 12 + i*8
		blobType := binary.BigEndian.Uint32(sig[entryOffset:])
		blobOffset := binary.BigEndian.Uint32(sig[entryOffset+4:])

		if blobOffset+8 > uint32(len(sig)) {
			continue
		}
		blobSize := binary.BigEndian.Uint32(sig[blobOffset+4:])
		if blobOffset+blobSize > uint32(len(sig)) {
			continue
		}
		blob := sig[blobOffset : blobOffset+blobSize]

		switch {
		case blobType == CSSLOT_CODEDIRECTORY,
			blobType >= CSSLOT_ALTERNATE_CODEDIRECTORIES && blobType < CSSLOT_CMS_SIGNATURE:
			if teamID := codeDirectoryTeamID(blob); teamID != "" {
				return teamID, nil
			}
		case blobType == CSSLOT_CMS_SIGNATURE:
			cmsBlob = blob
		}
	}

	// No CodeDirectory team ID (ad-hoc or old signature); try the CMS
	// signer certificate.
	if teamID := cmsSignerTeamID(cmsBlob); teamID != "" {
		return teamID, nil
	}

	return "", fmt.Errorf("signature carries no team identifier")
}

// codeDirectoryTeamID reads the team ID field of a CodeDirectory blob.
// The field exists from version 0x20200 on.
func codeDirectoryTeamID(blob []byte) string {
	if len(blob) < 52 {
		return ""
	}
	if binary.BigEndian.Uint32(blob[0:4]) != CSMAGIC_CODEDIRECTORY {
		return ""
	}

	version := binary.BigEndian.Uint32(blob[8:12])
	if version < 0x20200 {
		return ""
	}

	teamOffset := binary.BigEndian.Uint32(blob[48:52])
	if teamOffset == 0 || teamOffset >= uint32(len(blob)) {
		return ""
	}

	end := teamOffset
	for end < uint32(len(blob)) && blob[end] != 0 {
		end++
	}
	return string(blob[teamOffset:end])
}

// cmsSignerTeamID extracts the team ID from the OU of the CMS signer
// certificate.
func cmsSignerTeamID(blob []byte) string {
	if len(blob) <= 8 {
		return ""
	}

	p7, err := pkcs7.Parse(blob[8:])
	if err != nil || len(p7.Signers) == 0 {
		return ""
	}

	signer := p7.Signers[0]
	for _, cert := range p7.Certificates {
		if cert.SerialNumber.Cmp(signer.IssuerAndSerialNumber.SerialNumber) != 0 {
			continue
		}
		for _, ou := range cert.Subject.OrganizationalUnit {
			if len(ou) == 10 && isAlphanumeric(ou) {
				return ou
			}
		}
	}
	return ""
}

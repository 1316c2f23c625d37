// Package signing reads iOS code-signing material: provisioning profiles,
// P12/PEM signing certificates, and the code signatures of built Mach-O
// binaries. It is read-only; the package derives and checks team
// identifiers but never produces signatures.
package signing

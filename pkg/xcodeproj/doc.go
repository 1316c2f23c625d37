// Package xcodeproj edits build settings in an Xcode project.pbxproj file.
//
// The project file is treated as text. Edits are anchored insertions and
// substitutions inside the buildSettings block of a named build
// configuration, so the tool never needs a full pbxproj object model and
// leaves the rest of the file byte-for-byte untouched.
package xcodeproj

package xcodeproj

import (
	"fmt"
	"regexp"
	"strings"
)

// Outcome describes what a patch operation did to the project file.
type Outcome int

const (
	Unchanged Outcome = iota
	Added
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Updated:
		return "updated"
	default:
		return "unchanged"
	}
}

// Code signing styles accepted by Xcode.
const (
	StyleManual    = "Manual"
	StyleAutomatic = "Automatic"
)

var devTeamRe = regexp.MustCompile(`DEVELOPMENT_TEAM = ([^;]*);`)

// anchorRe matches the IPHONEOS_DEPLOYMENT_TARGET line new settings are
// inserted after, capturing its indentation.
var anchorRe = regexp.MustCompile(`(?m)^([ \t]*)IPHONEOS_DEPLOYMENT_TARGET = [^;\n]*;`)

// settingsBlock is the span of one buildSettings region within the file.
type settingsBlock struct {
	start, end int
}

// configBlockPattern matches an XCBuildConfiguration object for the named
// configuration and captures its buildSettings contents. Same shape as the
// object references the format emits: a 24-digit hex ID followed by the
// configuration name as a block comment.
func configBlockPattern(configuration string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)[0-9A-F]{24} /\* ` + regexp.QuoteMeta(configuration) + ` \*/ = \{[^}]*buildSettings = \{([^}]*)\}`)
}

// targetBlocks returns the buildSettings spans of the target-level build
// configurations with the given name. Project-level configurations carry no
// PRODUCT_BUNDLE_IDENTIFIER and are skipped.
func (p *Project) targetBlocks(configuration string) ([]settingsBlock, error) {
	matches := configBlockPattern(configuration).FindAllStringSubmatchIndex(p.content, -1)

	var blocks []settingsBlock
	for _, m := range matches {
		span := p.content[m[2]:m[3]]
		if strings.Contains(span, "PRODUCT_BUNDLE_IDENTIFIER") {
			blocks = append(blocks, settingsBlock{start: m[2], end: m[3]})
		}
	}

	if len(blocks) == 0 {
		return nil, fmt.Errorf("could not find %s target configuration in %s", configuration, p.path)
	}
	return blocks, nil
}

// SetDevelopmentTeam injects DEVELOPMENT_TEAM = teamID into the target-level
// build configurations with the given name.
//
// If any of those configurations already carries a DEVELOPMENT_TEAM, every
// assignment in the file is rewritten to the new value (Updated), or left
// alone when all of them already match (Unchanged). Otherwise the setting is
// inserted after each configuration's IPHONEOS_DEPLOYMENT_TARGET line
// (Added); a configuration without that anchor line is an error and the
// project is left unmodified.
func (p *Project) SetDevelopmentTeam(configuration, teamID string) (Outcome, error) {
	if teamID == "" {
		return Unchanged, fmt.Errorf("team identifier is empty")
	}

	blocks, err := p.targetBlocks(configuration)
	if err != nil {
		return Unchanged, err
	}

	hasTeam := false
	for _, b := range blocks {
		if strings.Contains(p.content[b.start:b.end], "DEVELOPMENT_TEAM") {
			hasTeam = true
			break
		}
	}

	if hasTeam {
		allSame := true
		for _, m := range devTeamRe.FindAllStringSubmatch(p.content, -1) {
			if strings.TrimSpace(m[1]) != teamID {
				allSame = false
				break
			}
		}
		if allSame {
			return Unchanged, nil
		}
		p.content = devTeamRe.ReplaceAllString(p.content, "DEVELOPMENT_TEAM = "+teamID+";")
		return Updated, nil
	}

	// Insert into each block, last one first so earlier offsets stay valid.
	patched := p.content
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		span := patched[b.start:b.end]

		loc := anchorRe.FindStringSubmatchIndex(span)
		if loc == nil {
			return Unchanged, fmt.Errorf("could not find IPHONEOS_DEPLOYMENT_TARGET in %s target configuration", configuration)
		}

		indent := span[loc[2]:loc[3]]
		insertAt := b.start + loc[1]
		patched = patched[:insertAt] + "\n" + indent + "DEVELOPMENT_TEAM = " + teamID + ";" + patched[insertAt:]
	}
	p.content = patched
	return Added, nil
}

// SetCodeSignStyle inserts CODE_SIGN_STYLE = style after the
// DEVELOPMENT_TEAM = teamID line of each target-level configuration with the
// given name. Configurations that already carry a CODE_SIGN_STYLE are left
// alone; a configuration without the matching team line is an error and the
// project is left unmodified.
func (p *Project) SetCodeSignStyle(configuration, style, teamID string) (Outcome, error) {
	if style != StyleManual && style != StyleAutomatic {
		return Unchanged, fmt.Errorf("invalid code sign style: %s", style)
	}

	blocks, err := p.targetBlocks(configuration)
	if err != nil {
		return Unchanged, err
	}

	teamLineRe := regexp.MustCompile(`(?m)^([ \t]*)DEVELOPMENT_TEAM = ` + regexp.QuoteMeta(teamID) + `;`)

	patched := p.content
	added := false
	for i := len(blocks) - 1; i >= 0; i-- {
		b := blocks[i]
		span := patched[b.start:b.end]

		if strings.Contains(span, "CODE_SIGN_STYLE") {
			continue
		}

		loc := teamLineRe.FindStringSubmatchIndex(span)
		if loc == nil {
			return Unchanged, fmt.Errorf("could not find DEVELOPMENT_TEAM = %s in %s target configuration", teamID, configuration)
		}

		indent := span[loc[2]:loc[3]]
		insertAt := b.start + loc[1]
		patched = patched[:insertAt] + "\n" + indent + "CODE_SIGN_STYLE = " + style + ";" + patched[insertAt:]
		added = true
	}

	if !added {
		return Unchanged, nil
	}
	p.content = patched
	return Added, nil
}

// Setting reads a build setting from the first target-level configuration
// with the given name. Quoted values are returned without the quotes.
func (p *Project) Setting(configuration, name string) (string, bool) {
	blocks, err := p.targetBlocks(configuration)
	if err != nil {
		return "", false
	}

	settingRe := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(name) + ` = ([^;\n]*);`)
	m := settingRe.FindStringSubmatch(p.content[blocks[0].start:blocks[0].end])
	if m == nil {
		return "", false
	}
	return strings.Trim(m[1], `"`), true
}

package main

import (
	"fmt"
	"os"

	"github.com/aluedeke/xcteam/pkg/signing"
	"github.com/aluedeke/xcteam/pkg/xcodeproj"
	"github.com/docopt/docopt-go"
)

const version = "1.0.0"

const usage = `xcteam - Xcode Project Signing Preparation Tool

A command-line tool that prepares an Xcode project for automated code
signing: it injects the development team and code-signing style into the
project file, and can verify that a built binary was signed with the
expected team.

Usage:
  xcteam [team] [options]
  xcteam code_sign [options]
  xcteam info (--profile=<path> | --p12=<path> [--password=<password>] | --project=<path> [--configuration=<name>])
  xcteam verify --app=<path> [--team-id=<id>]
  xcteam -h | --help
  xcteam --version

Commands:
  team       Inject or update DEVELOPMENT_TEAM in the target configuration (default)
  code_sign  Inject CODE_SIGN_STYLE next to the development team
  info       Display signing information from a profile, P12 or project file
  verify     Check the team ID a built binary or .app bundle was signed with

Options:
  --project=<path>        Path to project.pbxproj (or XCTEAM_PROJECT env var;
                          auto-detected from the working directory otherwise)
  --team-id=<id>          Development team identifier (or IOS_TEAM_ID env var)
  --profile=<path>        Provisioning profile to read the team ID from
  --p12=<path>            P12 certificate to read the team ID from
  --password=<password>   Password for the P12 file (or XCTEAM_PASSWORD env var)
  --configuration=<name>  Build configuration to patch [default: Release]
  --style=<style>         Code signing style, Manual or Automatic [default: Manual]
  --app=<path>            Built .app bundle or Mach-O binary (verify command)
  -h --help               Show this help message
  --version               Show version

Environment Variables:
  IOS_TEAM_ID             Development team identifier (overridden by --team-id)
  XCTEAM_PROJECT          Path to project.pbxproj (overridden by --project)
  XCTEAM_PASSWORD         P12 certificate password (overridden by --password)

Examples:
  # Inject the team from the environment (typical CI usage)
  export IOS_TEAM_ID=AB12CD34EF
  xcteam team
  xcteam code_sign

  # Inject the team from a provisioning profile instead
  xcteam team --profile=dist.mobileprovision

  # Patch a specific project and configuration
  xcteam team --project=ios/MyApp.xcodeproj/project.pbxproj --configuration=Release

  # Inspect signing material
  xcteam info --profile=dist.mobileprovision
  xcteam info --p12=cert.p12 --password=secret
  xcteam info --project=ios/MyApp.xcodeproj/project.pbxproj

  # Verify a built app was signed with the expected team
  xcteam verify --app=build/MyApp.app --team-id=AB12CD34EF
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		os.Exit(1)
	}

	if codeSign, _ := opts.Bool("code_sign"); codeSign {
		err = runCodeSign(opts)
	} else if info, _ := opts.Bool("info"); info {
		err = runInfo(opts)
	} else if verify, _ := opts.Bool("verify"); verify {
		err = runVerify(opts)
	} else {
		err = runTeam(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTeam(opts docopt.Opts) error {
	teamID, err := resolveTeamID(opts)
	if err != nil {
		return err
	}

	proj, configuration, err := loadProject(opts)
	if err != nil {
		return err
	}

	outcome, err := proj.SetDevelopmentTeam(configuration, teamID)
	if err != nil {
		return err
	}
	if err := proj.Save(); err != nil {
		return err
	}

	switch outcome {
	case xcodeproj.Added:
		fmt.Printf("Added DEVELOPMENT_TEAM to %s target configuration\n", configuration)
	case xcodeproj.Updated:
		fmt.Printf("Updated DEVELOPMENT_TEAM in %s target configuration\n", configuration)
	default:
		fmt.Printf("DEVELOPMENT_TEAM already set in %s target configuration\n", configuration)
	}
	return nil
}

func runCodeSign(opts docopt.Opts) error {
	teamID, err := resolveTeamID(opts)
	if err != nil {
		return err
	}
	style, _ := opts.String("--style")

	proj, configuration, err := loadProject(opts)
	if err != nil {
		return err
	}

	outcome, err := proj.SetCodeSignStyle(configuration, style, teamID)
	if err != nil {
		return err
	}
	if err := proj.Save(); err != nil {
		return err
	}

	if outcome == xcodeproj.Added {
		fmt.Printf("Added CODE_SIGN_STYLE = %s to %s target configuration\n", style, configuration)
	} else {
		fmt.Printf("CODE_SIGN_STYLE already set in %s target configuration\n", configuration)
	}
	return nil
}

func runInfo(opts docopt.Opts) error {
	if profilePath, _ := opts.String("--profile"); profilePath != "" {
		return showProfileInfo(profilePath)
	}
	if p12Path, _ := opts.String("--p12"); p12Path != "" {
		password, _ := opts.String("--password")
		if password == "" {
			password = os.Getenv("XCTEAM_PASSWORD")
		}
		return showP12Info(p12Path, password)
	}
	if projectPath, _ := opts.String("--project"); projectPath != "" {
		configuration, _ := opts.String("--configuration")
		return showProjectInfo(projectPath, configuration)
	}
	return fmt.Errorf("one of --profile, --p12 or --project is required")
}

func runVerify(opts docopt.Opts) error {
	appPath, _ := opts.String("--app")

	expected, _ := opts.String("--team-id")
	if expected == "" {
		expected = os.Getenv("IOS_TEAM_ID")
	}
	if expected == "" {
		return fmt.Errorf("--team-id is required (or set IOS_TEAM_ID environment variable)")
	}

	fi, err := os.Stat(appPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", appPath, err)
	}

	var teamID string
	if fi.IsDir() {
		teamID, err = signing.TeamIDFromBundle(appPath)
	} else {
		teamID, err = signing.TeamIDFromBinary(appPath)
	}
	if err != nil {
		return err
	}

	if teamID != expected {
		return fmt.Errorf("signature team ID %s does not match expected team %s", teamID, expected)
	}

	fmt.Printf("Signature team ID %s matches expected team\n", teamID)
	return nil
}

// resolveTeamID picks the development team from the flag, the environment,
// or signing material, in that order.
func resolveTeamID(opts docopt.Opts) (string, error) {
	if teamID, _ := opts.String("--team-id"); teamID != "" {
		return teamID, nil
	}
	if teamID := os.Getenv("IOS_TEAM_ID"); teamID != "" {
		return teamID, nil
	}

	if profilePath, _ := opts.String("--profile"); profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return "", fmt.Errorf("failed to read provisioning profile: %w", err)
		}
		profile, err := signing.ParseProfile(data)
		if err != nil {
			return "", err
		}
		if profile.IsExpired() {
			return "", fmt.Errorf("provisioning profile has expired")
		}
		if teamID := profile.TeamID(); teamID != "" {
			return teamID, nil
		}
		return "", fmt.Errorf("provisioning profile carries no team identifier")
	}

	if p12Path, _ := opts.String("--p12"); p12Path != "" {
		password, _ := opts.String("--password")
		if password == "" {
			password = os.Getenv("XCTEAM_PASSWORD")
		}
		data, err := os.ReadFile(p12Path)
		if err != nil {
			return "", fmt.Errorf("failed to read P12 file: %w", err)
		}
		identity, err := signing.LoadIdentity(data, password)
		if err != nil {
			return "", err
		}
		if identity.TeamID != "" {
			return identity.TeamID, nil
		}
		return "", fmt.Errorf("certificate carries no team identifier")
	}

	return "", fmt.Errorf("no team identifier: set IOS_TEAM_ID or pass --team-id, --profile or --p12")
}

func loadProject(opts docopt.Opts) (*xcodeproj.Project, string, error) {
	projectPath, _ := opts.String("--project")
	if projectPath == "" {
		projectPath = os.Getenv("XCTEAM_PROJECT")
	}
	if projectPath == "" {
		var err error
		projectPath, err = xcodeproj.FindProjectFile(".")
		if err != nil {
			return nil, "", err
		}
	}

	configuration, _ := opts.String("--configuration")

	proj, err := xcodeproj.Load(projectPath)
	if err != nil {
		return nil, "", err
	}
	return proj, configuration, nil
}

func showProfileInfo(profilePath string) error {
	data, err := os.ReadFile(profilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}

	profile, err := signing.ParseProfile(data)
	if err != nil {
		return err
	}

	fmt.Println("Provisioning Profile Information")
	fmt.Println("================================")
	fmt.Printf("File:           %s\n", profilePath)
	fmt.Printf("Name:           %s\n", profile.Name)
	fmt.Printf("Team ID:        %s\n", profile.TeamID())
	fmt.Printf("Team Name:      %s\n", profile.TeamName)
	fmt.Printf("App ID:         %s\n", profile.ApplicationIdentifier())
	fmt.Printf("UUID:           %s\n", profile.UUID)
	fmt.Printf("Created:        %s\n", profile.CreationDate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Expiration:     %s\n", profile.ExpirationDate.Format("2006-01-02 15:04:05"))
	fmt.Printf("Expired:        %v\n", profile.IsExpired())

	if certs, err := profile.Certificates(); err == nil {
		fmt.Printf("Certificates:   %d\n", len(certs))
		for i, cert := range certs {
			fmt.Printf("  [%d] %s\n", i+1, cert.Subject.CommonName)
			fmt.Printf("      Serial: %s\n", cert.SerialNumber.String())
			fmt.Printf("      Expires: %s\n", cert.NotAfter.Format("2006-01-02"))
		}
	}

	if len(profile.ProvisionedDevices) > 0 {
		fmt.Printf("Devices:        %d\n", len(profile.ProvisionedDevices))
	}
	return nil
}

func showP12Info(p12Path, password string) error {
	data, err := os.ReadFile(p12Path)
	if err != nil {
		return fmt.Errorf("failed to read P12 file: %w", err)
	}

	identity, err := signing.LoadIdentity(data, password)
	if err != nil {
		return err
	}

	cert := identity.Certificate
	fmt.Println("Certificate Information")
	fmt.Println("=======================")
	fmt.Printf("File:           %s\n", p12Path)
	fmt.Printf("Subject:        %s\n", cert.Subject.CommonName)
	fmt.Printf("Team ID:        %s\n", identity.TeamID)
	fmt.Printf("Serial:         %s\n", cert.SerialNumber.String())
	fmt.Printf("Not Before:     %s\n", cert.NotBefore.Format("2006-01-02"))
	fmt.Printf("Not After:      %s\n", cert.NotAfter.Format("2006-01-02"))
	return nil
}

func showProjectInfo(projectPath, configuration string) error {
	proj, err := xcodeproj.Load(projectPath)
	if err != nil {
		return err
	}

	fmt.Println("Project Signing Settings")
	fmt.Println("========================")
	fmt.Printf("File:           %s\n", projectPath)
	fmt.Printf("Configuration:  %s\n", configuration)

	settings := []string{
		"PRODUCT_BUNDLE_IDENTIFIER",
		"DEVELOPMENT_TEAM",
		"CODE_SIGN_STYLE",
		"CODE_SIGN_IDENTITY",
		"IPHONEOS_DEPLOYMENT_TARGET",
	}
	for _, name := range settings {
		if value, ok := proj.Setting(configuration, name); ok {
			fmt.Printf("%-30s %s\n", name+":", value)
		} else {
			fmt.Printf("%-30s (not set)\n", name+":")
		}
	}
	return nil
}

// Command ringsig-cli proves and verifies Credible Confessions ring
// signatures over a JSON bundle file, the Go successor to
// original_source/ringsig/src/ringsig-cli.rs.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/DavidVorick/CredibleConfessions"
	"github.com/DavidVorick/CredibleConfessions/internal/cliutil"
)

var (
	verboseFlag = &cli.BoolFlag{Name: "verbose", Usage: "log at debug level"}
	logJSONFlag = &cli.BoolFlag{Name: "log-json", Usage: "emit logs as JSON"}
	keyFlag     = &cli.StringFlag{Name: "key", Usage: "path to an unencrypted OpenSSH secret key file to sign with"}
)

func main() {
	app := &cli.App{
		Name:  "ringsig-cli",
		Usage: "prove and verify Credible Confessions ring signatures",
		Commands: []*cli.Command{
			{
				Name:      "prove",
				Usage:     "sign a bundle's message with one of the ring's keys",
				ArgsUsage: "<bundle.json|->",
				Flags:     []cli.Flag{verboseFlag, logJSONFlag, keyFlag},
				Action:    proveCmd,
			},
			{
				Name:      "verify",
				Usage:     "verify a bundle's embedded proof",
				ArgsUsage: "<bundle.json|->",
				Flags:     []cli.Flag{verboseFlag, logJSONFlag},
				Action:    verifyCmd,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func proveCmd(c *cli.Context) error {
	log := cliutil.New(c.Bool(verboseFlag.Name), c.Bool(logJSONFlag.Name))

	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: ringsig-cli prove <bundle.json|->", 1)
	}
	bundle, err := cliutil.ReadBundle(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.Debugw("bundle read", "ring size", len(bundle.PublicKeys))

	secretKeyPEM, err := resolveSecretKey(c, log)
	if err != nil {
		return cli.Exit(err, 1)
	}

	proof, errStr := ringsig.ProveLines(bundle.PublicKeys, []byte(bundle.Message), secretKeyPEM)
	if errStr != "" {
		return cli.Exit(fmt.Errorf("proving: %s", errStr), 1)
	}
	bundle.Proof = &proof

	log.Infow("proof generated")
	return cliutil.WriteBundle(os.Stdout, bundle)
}

func verifyCmd(c *cli.Context) error {
	log := cliutil.New(c.Bool(verboseFlag.Name), c.Bool(logJSONFlag.Name))

	path := c.Args().First()
	if path == "" {
		return cli.Exit("usage: ringsig-cli verify <bundle.json|->", 1)
	}
	bundle, err := cliutil.ReadBundle(path)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if bundle.Proof == nil {
		return cli.Exit("bundle is missing a proof", 1)
	}

	if errStr := ringsig.VerifyLines(*bundle.Proof, bundle.PublicKeys, []byte(bundle.Message)); errStr != "" {
		return cli.Exit(fmt.Errorf("verification failed: %s", errStr), 1)
	}

	log.Infow("proof accepted", "ring size", len(bundle.PublicKeys))
	fmt.Println(bundle.Message)
	fmt.Println("-----END OF MESSAGE-----")
	fmt.Println("successfully verified proof with one of")
	for _, k := range bundle.PublicKeys {
		fmt.Println(k)
	}
	return nil
}

func resolveSecretKey(c *cli.Context, log cliutil.Logger) (string, error) {
	if path := c.String(keyFlag.Name); path != "" {
		contents, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(contents), nil
	}

	log.Debugw("no --key given, scanning ~/.ssh")
	return cliutil.FindSecretKeyInSSHDir(ringsig.IsSecretKey)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/configuration"
	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/multisig"
)

type metadata struct {
	config  *configuration.Configuration
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	defer exitwithstatus.Handler()

	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "suicore-cli"
	app.Usage = "keys, signatures and transactions for Sui"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` [built-in defaults]",
		},
	}

	privateKeyFlag := cli.StringFlag{
		Name:  "private-key, k",
		Value: "",
		Usage: "*suiprivkey encoded `KEY`",
	}
	txFlag := cli.StringFlag{
		Name:  "tx, t",
		Value: "",
		Usage: "*base64 transaction `BYTES`",
	}
	signatureFlag := cli.StringFlag{
		Name:  "signature, s",
		Value: "",
		Usage: "*base64 serialized `SIGNATURE`",
	}
	multisigKeyFlag := cli.StringFlag{
		Name:  "multisig, m",
		Value: "",
		Usage: " base64 multisig public `KEY`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a mnemonic and the key it derives",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scheme, s",
					Value: "",
					Usage: " signature `SCHEME` [ED25519|Secp256k1|Secp256r1]",
				},
				cli.StringFlag{
					Name:  "path, p",
					Value: "",
					Usage: " derivation `PATH` [scheme default]",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "show the address of a key",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "+suiprivkey encoded `KEY`",
				},
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: "+BIP-39 `PHRASE`",
				},
				cli.StringFlag{
					Name:  "public-key, p",
					Value: "",
					Usage: "+base64 flag and public `KEY`",
				},
				cli.StringFlag{
					Name:  "scheme, s",
					Value: "",
					Usage: " signature `SCHEME` for a mnemonic",
				},
				cli.StringFlag{
					Name:  "path",
					Value: "",
					Usage: " derivation `PATH` for a mnemonic",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "sign-message",
			Usage:     "sign a personal message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				privateKeyFlag,
				cli.StringFlag{
					Name:  "message, M",
					Value: "",
					Usage: "*message `TEXT`",
				},
			},
			Action: runSignMessage,
		},
		{
			Name:      "verify-message",
			Usage:     "verify a personal message signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				signatureFlag,
				cli.StringFlag{
					Name:  "message, M",
					Value: "",
					Usage: "*message `TEXT`",
				},
			},
			Action: runVerifyMessage,
		},
		{
			Name:      "sign-tx",
			Usage:     "sign transaction bytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				privateKeyFlag,
				txFlag,
			},
			Action: runSignTransaction,
		},
		{
			Name:      "verify-tx",
			Usage:     "verify a single or multisig transaction signature",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				txFlag,
				signatureFlag,
				multisigKeyFlag,
			},
			Action: runVerifyTransaction,
		},
		{
			Name:      "digest",
			Usage:     "show the digests of transaction bytes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				txFlag,
			},
			Action: runDigest,
		},
		{
			Name:      "decode-tx",
			Usage:     "decode transaction bytes to JSON",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				txFlag,
			},
			Action: runDecodeTransaction,
		},
		{
			Name:      "type-tag",
			Usage:     "parse a Move type and show its encoding",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, T",
					Value: "",
					Usage: "*Move `TYPE` e.g. 0x2::coin::Coin<0x2::sui::SUI>",
				},
			},
			Action: runTypeTag,
		},
		{
			Name:      "varint",
			Usage:     "encode or decode a ULEB128 value",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "encode, e",
					Value: "",
					Usage: "+decimal `NUMBER`",
				},
				cli.StringFlag{
					Name:  "decode, d",
					Value: "",
					Usage: "+hex `BYTES`",
				},
			},
			Action: runVarint,
		},
		{
			Name:      "pure",
			Usage:     "encode a pure transaction argument",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: "*u8 u16 u32 u64 u256 bool address or string `TYPE`",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: "*decimal, bool, address or text `VALUE`",
				},
			},
			Action: runPure,
		},
		{
			Name:      "multisig-address",
			Usage:     "build a multisig public key and its address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "key, K",
					Usage: "*member `KEY[:WEIGHT]`, base64 flag and public key, repeat in order",
				},
				cli.IntFlag{
					Name:  "threshold, T",
					Value: 0,
					Usage: "*total weight `COUNT` needed",
				},
			},
			Action: runMultisigAddress,
		},
		{
			Name:      "multisig-combine",
			Usage:     "combine member signatures into a multisig",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "multisig, m",
					Value: "",
					Usage: "*base64 multisig public `KEY`",
				},
				cli.StringSliceFlag{
					Name:  "signature, s",
					Usage: "*member `SIGNATURE`, repeat for each signer",
				},
			},
			Action: runMultisigCombine,
		},
		{
			Name:      "transfer",
			Usage:     "build a transfer transaction",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: "+suiprivkey `KEY` of the sender, also signs",
				},
				cli.StringFlag{
					Name:  "sender, f",
					Value: "",
					Usage: "+sender `ADDRESS` when not signing",
				},
				cli.StringFlag{
					Name:  "to, r",
					Value: "",
					Usage: "*recipient `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "gas, g",
					Value: "",
					Usage: "*gas coin `ID:VERSION:DIGEST`",
				},
				cli.StringSliceFlag{
					Name:  "object, o",
					Usage: "+object to send `ID[:VERSION:DIGEST]`, repeatable",
				},
				cli.StringFlag{
					Name:  "objects, O",
					Value: "",
					Usage: " JSON `FILE` of object info for objects given by id only",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "+`MIST` split from the gas coin",
				},
				cli.Uint64Flag{
					Name:  "budget, b",
					Value: 0,
					Usage: " gas `BUDGET` [configuration]",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " gas `PRICE` [configuration]",
				},
				cli.Uint64Flag{
					Name:  "epoch, x",
					Value: 0,
					Usage: " expire after `EPOCH` [never]",
				},
			},
			Action: runTransfer,
		},
		{
			Name:  "version",
			Usage: "display suicore-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start the logger
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		file := c.GlobalString("config")
		if "" != file {
			file = os.ExpandEnv(file)
		}
		if verbose {
			fmt.Fprintf(e, "config file: %q\n", file)
		}

		variables := map[string]string{
			"command": command,
		}
		config, err := configuration.GetConfiguration(file, variables)
		if nil != err {
			return err
		}
		if err := config.CreateDirectories(); nil != err {
			return err
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}
		if err := multisig.Initialise(); nil != err {
			fault.Criticalf("multisig initialise error: %s", err)
			return err
		}

		log := logger.New("main")
		log.Infof("command: %s", command)

		c.App.Metadata["config"] = &metadata{
			config:  config,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); !ok {
			return nil
		}
		multisig.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}

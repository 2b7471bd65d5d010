// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/configuration"
	"github.com/bitmark-inc/suicore/multisig"
)

const (
	testingDirName = "testing"
	category       = "testing"
)

func TestMain(m *testing.M) {
	if err := setupTestLogger(); nil != err {
		panic(err)
	}
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() error {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	return multisig.Initialise()
}

func teardownTestLogger() {
	multisig.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// run one command action the way the app would, returning its output
func run(t *testing.T, name string, args ...string) ([]byte, error) {
	app := newApp()

	var command *cli.Command
	for i := range app.Commands {
		if name == app.Commands[i].Name {
			command = &app.Commands[i]
		}
	}
	require.NotNil(t, command, "command: %s", name)

	set := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, f := range command.Flags {
		f.Apply(set)
	}
	require.Nil(t, set.Parse(args), "parse: %v", args)

	w := &bytes.Buffer{}
	app.Metadata["config"] = &metadata{
		config: configuration.Default(),
		log:    logger.New(category),
		e:      ioutil.Discard,
		w:      w,
	}

	action, ok := command.Action.(func(*cli.Context) error)
	require.True(t, ok, "action type")

	err := action(cli.NewContext(app, set, nil))
	return w.Bytes(), err
}

// run a command expected to succeed and decode its JSON output
func runJSON(t *testing.T, name string, args ...string) map[string]interface{} {
	out, err := run(t, name, args...)
	require.Nil(t, err, "%s %v", name, args)

	result := make(map[string]interface{})
	require.Nil(t, json.Unmarshal(out, &result), "json: %s", out)
	return result
}

func TestVarint(t *testing.T) {
	r := runJSON(t, "varint", "--encode", "300")
	assert.Equal(t, "ac02", r["encoded"], "encoded")
	assert.Equal(t, float64(2), r["length"], "length")

	r = runJSON(t, "varint", "--decode", "ac02")
	assert.Equal(t, float64(300), r["value"], "decoded")

	_, err := run(t, "varint", "--decode", "8000")
	assert.NotNil(t, err, "padded encoding")

	_, err = run(t, "varint", "--decode", "0100")
	assert.NotNil(t, err, "trailing byte")

	_, err = run(t, "varint", "--encode", "4294967296")
	assert.NotNil(t, err, "above maximum")

	_, err = run(t, "varint", "--encode", "1", "--decode", "01")
	assert.Equal(t, ErrConflictingOptions, err, "both")

	_, err = run(t, "varint")
	assert.Equal(t, ErrRequiredValue, err, "neither")
}

func TestPure(t *testing.T) {
	r := runJSON(t, "pure", "--type", "u64", "--value", "1000")
	assert.Equal(t, "e803000000000000", r["encoded"], "u64")

	r = runJSON(t, "pure", "--type", "u256", "--value", "18446744073709551616")
	assert.Equal(t, "0000000000000000"+"01"+strings.Repeat("0", 46), r["encoded"], "u256 second limb")
	assert.Equal(t, float64(32), r["length"], "u256 length")

	r = runJSON(t, "pure", "--type", "address", "--value", "0x2")
	assert.Equal(t, strings.Repeat("0", 62)+"02", r["encoded"], "address")

	r = runJSON(t, "pure", "--type", "string", "--value", "sui")
	assert.Equal(t, "03737569", r["encoded"], "string")

	r = runJSON(t, "pure", "--type", "bool", "--value", "true")
	assert.Equal(t, "01", r["encoded"], "bool")

	_, err := run(t, "pure", "--type", "u8", "--value", "256")
	assert.Equal(t, ErrInvalidNumber, err, "u8 overflow")

	_, err = run(t, "pure", "--type", "u256", "--value", "-1")
	assert.Equal(t, ErrInvalidNumber, err, "negative")

	_, err = run(t, "pure", "--type", "f64", "--value", "1")
	assert.Equal(t, ErrInvalidType, err, "unknown type")

	_, err = run(t, "pure", "--value", "1")
	assert.Equal(t, ErrRequiredType, err, "no type")
}

func TestTypeTag(t *testing.T) {
	r := runJSON(t, "type-tag", "--type", "0x2::coin::Coin< 0x2::sui::SUI >")
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", r["type"], "canonical")
	assert.Equal(t, "01", r["encoded"].(string)[:2], "struct tag")

	_, err := run(t, "type-tag", "--type", "0x2::coin::Coin<")
	assert.NotNil(t, err, "malformed")

	_, err = run(t, "type-tag")
	assert.Equal(t, ErrRequiredType, err, "missing")
}

func TestGenerateAndAddress(t *testing.T) {
	for _, scheme := range []string{"ED25519", "Secp256k1", "Secp256r1"} {
		g := runJSON(t, "generate", "--scheme", scheme)
		assert.Equal(t, scheme, g["scheme"], "scheme")

		a := runJSON(t, "address", "--private-key", g["private_key"].(string))
		assert.Equal(t, g["address"], a["address"], "%s: from private key", scheme)

		a = runJSON(t, "address", "--mnemonic", g["mnemonic"].(string), "--scheme", scheme)
		assert.Equal(t, g["address"], a["address"], "%s: from mnemonic", scheme)
		assert.Equal(t, g["path"], a["path"], "%s: default path", scheme)

		a = runJSON(t, "address", "--public-key", g["public_key"].(string))
		assert.Equal(t, g["address"], a["address"], "%s: from public key", scheme)
	}

	_, err := run(t, "address")
	assert.Equal(t, ErrRequiredKey, err, "no key")

	g := runJSON(t, "generate")
	_, err = run(t, "address", "--private-key", g["private_key"].(string), "--public-key", g["public_key"].(string))
	assert.Equal(t, ErrConflictingOptions, err, "two keys")
}

func TestSignVerifyMessage(t *testing.T) {
	g := runJSON(t, "generate", "--scheme", "Secp256r1")

	s := runJSON(t, "sign-message", "--private-key", g["private_key"].(string), "--message", "hello")
	assert.Equal(t, g["address"], s["address"], "signer address")

	v := runJSON(t, "verify-message", "--message", "hello", "--signature", s["signature"].(string))
	assert.Equal(t, true, v["valid"], "valid")
	assert.Equal(t, g["address"], v["address"], "recovered address")

	out, err := run(t, "verify-message", "--message", "hullo", "--signature", s["signature"].(string))
	assert.NotNil(t, err, "altered message")
	assert.Contains(t, string(out), `"valid": false`, "reported invalid")

	_, err = run(t, "sign-message", "--message", "hello")
	assert.Equal(t, ErrRequiredPrivateKey, err, "no key")
}

const gasArgument = "0x9a5:7:1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"

func TestTransfer(t *testing.T) {
	g := runJSON(t, "generate")

	tx := runJSON(t, "transfer",
		"--private-key", g["private_key"].(string),
		"--to", "0xb0b",
		"--gas", gasArgument,
		"--amount", "1000",
		"--epoch", "9",
	)
	assert.Equal(t, g["address"], tx["sender"], "sender")
	require.NotNil(t, tx["signature"], "signed")

	txText := tx["transaction"].(string)

	d := runJSON(t, "digest", "--tx", txText)
	assert.Equal(t, tx["digest"], d["digest"], "digest")
	assert.Equal(t, 64, len(d["intent_digest"].(string)), "intent digest hex")

	v := runJSON(t, "verify-tx", "--tx", txText, "--signature", tx["signature"].(string))
	assert.Equal(t, true, v["valid"], "valid")

	s := runJSON(t, "sign-tx", "--tx", txText, "--private-key", g["private_key"].(string))
	assert.Equal(t, tx["signature"], s["signature"], "deterministic ed25519 signature")

	decoded := runJSON(t, "decode-tx", "--tx", txText)
	assert.Equal(t, g["address"], decoded["sender"], "decoded sender")
	commands := decoded["commands"].([]interface{})
	require.Equal(t, 2, len(commands), "commands")
	assert.Equal(t, "SplitCoins", commands[0].(map[string]interface{})["kind"], "first command")
	assert.Equal(t, "TransferObjects", commands[1].(map[string]interface{})["kind"], "second command")

	_, err := run(t, "transfer", "--sender", "0xa11ce", "--to", "0xb0b", "--gas", gasArgument)
	assert.Equal(t, ErrRequiredPayload, err, "nothing to send")

	_, err = run(t, "transfer", "--to", "0xb0b", "--gas", gasArgument, "--amount", "1")
	assert.Equal(t, ErrRequiredSender, err, "no sender")

	_, err = run(t, "transfer", "--sender", "0xa11ce", "--to", "0xb0b", "--gas", "0x9a5:7", "--amount", "1")
	assert.Equal(t, ErrInvalidObjectRef, err, "short gas reference")

	_, err = run(t, "sign-tx", "--tx", "AAAA", "--private-key", g["private_key"].(string))
	assert.NotNil(t, err, "not a transaction")
}

func TestTransferResolvesObjects(t *testing.T) {
	objects := `[
  {"ref": {"objectId": "0xc011", "version": 12, "digest": "1thX6LZfHDZZKUs92febYZhYRcXddmzfzF2NvTkPNE"}, "shared": false, "initialSharedVersion": 0}
]`
	fileName := filepath.Join(testingDirName, "objects.json")
	require.Nil(t, ioutil.WriteFile(fileName, []byte(objects), 0600), "write")

	tx := runJSON(t, "transfer",
		"--sender", "0xa11ce",
		"--to", "0xb0b",
		"--gas", gasArgument,
		"--object", "0xc011",
		"--objects", fileName,
	)
	assert.Nil(t, tx["signature"], "not signed")

	decoded := runJSON(t, "decode-tx", "--tx", tx["transaction"].(string))
	inputs := decoded["inputs"].([]interface{})
	require.Equal(t, 2, len(inputs), "inputs")
	assert.Equal(t, "ImmOrOwnedObject", inputs[0].(map[string]interface{})["kind"], "resolved object")

	_, err := run(t, "transfer", "--sender", "0xa11ce", "--to", "0xb0b", "--gas", gasArgument, "--object", "0xdead", "--objects", fileName)
	assert.NotNil(t, err, "unknown object")
}

func TestMultisig(t *testing.T) {
	keys := make([]map[string]interface{}, 3)
	args := []string{"--threshold", "2"}
	for i, scheme := range []string{"ED25519", "Secp256k1", "Secp256r1"} {
		keys[i] = runJSON(t, "generate", "--scheme", scheme)
		args = append(args, "--key", keys[i]["public_key"].(string))
	}

	ms := runJSON(t, "multisig-address", args...)
	assert.Equal(t, float64(3), ms["total_weight"], "weight")
	assert.Equal(t, float64(2), ms["threshold"], "threshold")

	tx := runJSON(t, "transfer",
		"--sender", ms["address"].(string),
		"--to", "0xb0b",
		"--gas", gasArgument,
		"--amount", "5",
	)
	txText := tx["transaction"].(string)

	s2 := runJSON(t, "sign-tx", "--tx", txText, "--private-key", keys[2]["private_key"].(string))
	s0 := runJSON(t, "sign-tx", "--tx", txText, "--private-key", keys[0]["private_key"].(string))

	combined := runJSON(t, "multisig-combine",
		"--multisig", ms["public_key"].(string),
		"--signature", s2["signature"].(string),
		"--signature", s0["signature"].(string),
	)
	assert.Equal(t, "0000000000000101", combined["bitmap"], "bitmap")
	assert.Equal(t, float64(2), combined["signers"], "signers")

	v := runJSON(t, "verify-tx", "--tx", txText, "--multisig", ms["public_key"].(string), "--signature", combined["signature"].(string))
	assert.Equal(t, true, v["valid"], "valid")
	assert.Equal(t, ms["address"], v["address"], "address")

	single := runJSON(t, "multisig-combine",
		"--multisig", ms["public_key"].(string),
		"--signature", s0["signature"].(string),
	)
	out, err := run(t, "verify-tx", "--tx", txText, "--multisig", ms["public_key"].(string), "--signature", single["signature"].(string))
	assert.NotNil(t, err, "below threshold")
	assert.Contains(t, string(out), `"valid": false`, "reported")

	_, err = run(t, "multisig-address", "--key", keys[0]["public_key"].(string)+":0", "--threshold", "1")
	assert.Equal(t, ErrWeightOutOfRange, err, "zero weight")

	_, err = run(t, "multisig-address", "--key", keys[0]["public_key"].(string), "--threshold", "0")
	assert.Equal(t, ErrThresholdOutOfRange, err, "zero threshold")

	w := runJSON(t, "multisig-address", "--key", keys[0]["public_key"].(string)+":3", "--key", keys[1]["public_key"].(string), "--threshold", "3")
	assert.Equal(t, float64(4), w["total_weight"], "weighted")
}

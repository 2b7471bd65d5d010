// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/suicore/account"
	"github.com/bitmark-inc/suicore/bcs"
	"github.com/bitmark-inc/suicore/keypair"
	"github.com/bitmark-inc/suicore/transaction"
)

type transferResult struct {
	Transaction string                       `json:"transaction"`
	Digest      transaction.Digest           `json:"digest"`
	Sender      bcs.Address                  `json:"sender"`
	Signature   *account.SerializedSignature `json:"signature,omitempty"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey := strings.TrimSpace(c.String("private-key"))
	senderText := strings.TrimSpace(c.String("sender"))

	var signer keypair.Signer
	var sender bcs.Address
	var err error
	switch {
	case "" != privateKey && "" != senderText:
		return ErrConflictingOptions
	case "" != privateKey:
		signer, err = keypair.DecodePrivateKey(privateKey)
		if nil != err {
			return err
		}
		sender = account.AddressOf(signer.PublicKey())
	case "" != senderText:
		sender, err = bcs.AddressFromString(senderText)
		if nil != err {
			return err
		}
	default:
		return ErrRequiredSender
	}

	toText := strings.TrimSpace(c.String("to"))
	if "" == toText {
		return ErrRequiredRecipient
	}
	to, err := bcs.AddressFromString(toText)
	if nil != err {
		return err
	}

	gasText := c.String("gas")
	if "" == gasText {
		return ErrRequiredGas
	}
	gas, err := parseObjectRef(gasText)
	if nil != err {
		return err
	}

	budget := c.Uint64("budget")
	if 0 == budget {
		budget = m.config.Gas.Budget
	}
	price := c.Uint64("price")
	if 0 == price {
		price = m.config.Gas.Price
	}

	b := transaction.NewBuilder()
	b.SetLog(m.log)
	b.SetSender(sender)
	b.SetGasPayment(gas)
	b.SetGasBudget(budget)
	b.SetGasPrice(price)
	if epoch := c.Uint64("epoch"); 0 != epoch {
		b.SetExpiration(transaction.Expiration{
			Kind:  transaction.EpochExpiration,
			Epoch: epoch,
		})
	}

	objects := make([]transaction.Argument, 0)
	if amount := c.Uint64("amount"); 0 != amount {
		a, err := b.Pure(bcs.PureU64(amount))
		if nil != err {
			return err
		}
		coins, err := b.SplitCoins(b.Gas(), a)
		if nil != err {
			return err
		}
		objects = append(objects, coins.Nested(0))
	}

	for _, o := range c.StringSlice("object") {
		var in transaction.Input
		if strings.Contains(o, ":") {
			ref, err := parseObjectRef(o)
			if nil != err {
				return err
			}
			in, err = b.Object(ref)
			if nil != err {
				return err
			}
		} else {
			in, err = b.UnresolvedObject(strings.TrimSpace(o), false)
			if nil != err {
				return err
			}
		}
		objects = append(objects, in)
	}

	if 0 == len(objects) {
		return ErrRequiredPayload
	}

	recipient, err := b.Pure(bcs.PureAddress(to))
	if nil != err {
		return err
	}
	if _, err := b.TransferObjects(objects, recipient); nil != err {
		return err
	}

	if !b.IsPreparedForSerialization() {
		var resolver transaction.ObjectResolver
		if fileName := c.String("objects"); "" != fileName {
			r, err := newFileResolver(fileName)
			if nil != err {
				return err
			}
			resolver = r
		}
		cache, err := transaction.NewObjectCache(m.config.ObjectCacheSize)
		if nil != err {
			return err
		}
		if err := b.Resolve(resolver, cache); nil != err {
			return err
		}
	}

	data, err := b.Build()
	if nil != err {
		return err
	}
	packed, err := data.Pack()
	if nil != err {
		return err
	}

	result := transferResult{
		Transaction: base64.StdEncoding.EncodeToString(packed),
		Digest:      packed.Digest(),
		Sender:      sender,
	}
	if nil != signer {
		signature, err := account.SignTransaction(signer, packed)
		if nil != err {
			return err
		}
		result.Signature = &signature
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inputs: %d  commands: %d\n", len(data.Inputs), len(data.Commands))
	}
	m.log.Infof("transfer digest: %s", result.Digest)

	return printJson(m.w, result)
}

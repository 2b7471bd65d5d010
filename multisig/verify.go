// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package multisig

import (
	"math/bits"

	"github.com/bitmark-inc/suicore/fault"
	"github.com/bitmark-inc/suicore/intent"
	"github.com/bitmark-inc/suicore/keypair"
)

// Verifier - checks one member signature against an intent digest
type Verifier interface {
	VerifyMember(key keypair.PublicKey, digest []byte, signature []byte) bool
}

// KeyVerifier - verify with the member key's own scheme
type KeyVerifier struct{}

// VerifyMember - delegate to the key
func (KeyVerifier) VerifyMember(key keypair.PublicKey, digest []byte, signature []byte) bool {
	return key.Verify(digest, signature)
}

// Verify - check a multisig over a message under the scope
func Verify(scope intent.Scope, message []byte, pk *PublicKey, sig *Signature) error {
	return VerifyWith(KeyVerifier{}, scope, message, pk, sig)
}

// VerifyWith - Verify using a specific member verifier
//
// structure is checked first: every set bit must name a member and
// there must be exactly one signature per set bit.  Then every set bit
// is checked, a failure does not stop the walk, and the accepted
// weight must reach the threshold.
func VerifyWith(verifier Verifier, scope intent.Scope, message []byte, pk *PublicKey, sig *Signature) error {
	memberCount := len(pk.members)
	if 0 != sig.Bitmap>>uint(memberCount) {
		return fault.ErrBitmapOutOfRange
	}
	if bits.OnesCount16(sig.Bitmap) != len(sig.Signatures) {
		return fault.ErrSignatureCountMismatch
	}

	log := channel()
	digest := intent.Digest(scope, message)

	weight := 0
	next := 0
	for i := 0; i < memberCount; i += 1 {
		if 0 == sig.Bitmap&(1<<uint(i)) {
			continue
		}
		member := pk.members[i]
		ok := verifier.VerifyMember(member.PublicKey, digest[:], sig.Signatures[next])
		next += 1

		if ok {
			weight += int(member.Weight)
		}
		if nil != log {
			log.Debugf("member: %d scheme: %s valid: %t", i, member.PublicKey.Scheme(), ok)
		}
	}

	if weight < int(pk.threshold) {
		if nil != log {
			log.Warnf("weight: %d below threshold: %d", weight, pk.threshold)
		}
		return fault.ErrThresholdNotMet
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.  Values passed as
// variables are visible to the script as globals.
//
// the script must return a table, e.g.
//
//   return {
//       data_directory = ".",
//       scheme = "ED25519",
//       object_cache_size = 256,
//       gas = { budget = 10000000, price = 1000 },
//       logging = { directory = "log", file = "suicore.log", levels = { DEFAULT = "info" } },
//   }
package configuration

// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

//go:generate mockgen -destination=mock_network_test.go -package $GOPACKAGE github.com/ChainSafe/aleph-finality/dot/sync Network

// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command scriptvm evaluates an unlock/lock (or burn) script pair outside
// of any chain context, for manual script authoring and debugging.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/wangxinyu2018/scriptvm/internal/logging"
	"github.com/wangxinyu2018/scriptvm/txscript"
	"github.com/wangxinyu2018/scriptvm/txscript/host"
)

type noopTx struct{}

func (noopTx) SigningHash(int) [32]byte { return [32]byte{} }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		unlockHex  string
		lockHex    string
		paramsHex  []string
		maxMemory  uint64
		burn       bool
		curBlock   uint64
		curTime    uint64
		blockAge   int64
		timeAge    int64
		debug      bool
		verboseLog bool
	)

	cmd := &cobra.Command{
		Use:   "scriptvm",
		Short: "Evaluate a hex-encoded unlock/lock script pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verboseLog {
				logging.SetLevel(logging.TRACE)
			}

			unlockBytes, err := hex.DecodeString(unlockHex)
			if err != nil {
				return fmt.Errorf("decode --unlock: %w", err)
			}
			lockBytes, err := hex.DecodeString(lockHex)
			if err != nil {
				return fmt.Errorf("decode --lock: %w", err)
			}
			unlock, err := txscript.ParseScript(unlockBytes)
			if err != nil {
				return fmt.Errorf("parse unlock script: %w", err)
			}
			lockOrBurn, err := txscript.ParseScript(lockBytes)
			if err != nil {
				return fmt.Errorf("parse lock script: %w", err)
			}

			params := make([][]byte, len(paramsHex))
			for i, p := range paramsHex {
				b, err := hex.DecodeString(p)
				if err != nil {
					return fmt.Errorf("decode --param %d: %w", i, err)
				}
				params[i] = b
			}

			var blockAgePtr, timeAgePtr *uint64
			if blockAge >= 0 {
				v := uint64(blockAge)
				blockAgePtr = &v
			}
			if timeAge >= 0 {
				v := uint64(timeAge)
				timeAgePtr = &v
			}
			client := host.NewStaticClient(blockAgePtr, timeAgePtr)

			cfg := txscript.DefaultVMConfig
			if maxMemory > 0 {
				cfg.MaxMemory = maxMemory
			}

			verdict, err := txscript.Execute(
				unlock, params, lockOrBurn, noopTx{}, cfg, 0, burn,
				host.Outpoint{}, client, curBlock, curTime,
			)
			if err != nil {
				return err
			}

			fmt.Println(verdict)
			if debug {
				spew.Fdump(os.Stderr, struct {
					Unlock, LockOrBurn txscript.Script
					Params             [][]byte
				}{unlock, lockOrBurn, params})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unlockHex, "unlock", "", "hex-encoded unlock script")
	cmd.Flags().StringVar(&lockHex, "lock", "", "hex-encoded lock or burn script")
	cmd.Flags().StringArrayVar(&paramsHex, "param", nil, "hex-encoded auxiliary param, repeatable")
	cmd.Flags().Uint64Var(&maxMemory, "max-memory", 0, "stack memory cap in bytes (0 uses the default)")
	cmd.Flags().BoolVar(&burn, "burn", false, "evaluate --lock as a burn script")
	cmd.Flags().Uint64Var(&curBlock, "cur-block", 0, "current block number")
	cmd.Flags().Uint64Var(&curTime, "cur-time", 0, "current unix timestamp")
	cmd.Flags().Int64Var(&blockAge, "block-age", -1, "fixed BlockAge answer, -1 for unknown")
	cmd.Flags().Int64Var(&timeAge, "time-age", -1, "fixed TimeAge answer, -1 for unknown")
	cmd.Flags().BoolVar(&debug, "debug", false, "dump decoded scripts and params to stderr")
	cmd.Flags().BoolVar(&verboseLog, "verbose", false, "log every instruction as it executes")

	return cmd
}

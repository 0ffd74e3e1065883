package cli

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// GetQueryCmd returns the cli query commands for the bandoracle module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the bandoracle module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		GetCmdQueryConfig(),
		GetCmdQueryRequest(),
		GetCmdQueryPrice(),
		GetCmdEncodeCalldata(),
		GetCmdDecodeResult(),
	)

	return cmd
}

func queryRoute(path string) string {
	return fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path)
}

func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the owner and the bound oracle channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryConfig), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [request_id]",
		Short: "Query a registered request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := clientCtx.LegacyAmino.MarshalJSON(types.NewQueryRequestParams(args[0]))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryRequest), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [symbol]",
		Short: "Query the latest resolved price of a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := clientCtx.LegacyAmino.MarshalJSON(types.NewQueryPriceParams(args[0]))
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryRoute(types.QueryPrice), bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdEncodeCalldata prints the base64 calldata of a price request without
// touching the chain.
func GetCmdEncodeCalldata() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-calldata [symbols] [multiplier]",
		Short: "Encode the calldata of a price request, symbols are comma separated",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			multiplier, err := cast.ToUint64E(args[1])
			if err != nil {
				return fmt.Errorf("invalid multiplier: %w", err)
			}

			calldata, err := types.EncodeCalldata(parseSymbols(args[0]), multiplier)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(calldata))
			return err
		},
	}
}

// GetCmdDecodeResult prints the rates carried by a base64 result.
func GetCmdDecodeResult() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-result [result]",
		Short: "Decode the base64 result of a BandChain response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := types.DecodeResult(args[0])
			if err != nil {
				return err
			}

			out := make([]string, len(rates))
			for i, rate := range rates {
				out[i] = cast.ToString(rate)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, ","))
			return err
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

// GetTxCmd returns the transaction commands for the bandoracle module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}
	cmd.AddCommand(
		NewSetChannelTxCmd(),
		NewRegisterRequestTxCmd(),
		NewSendRequestTxCmd(),
	)
	return cmd
}

func NewSetChannelTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-channel [channel_id] --from [owner_address]",
		Short: "Bind the channel used for BandChain oracle requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetChannel(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewRegisterRequestTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-request [oracle_script_id] [symbols] [multiplier] [ask_count] [min_count] --from [owner_address]",
		Short: "Register a price request, symbols are comma separated",
		Example: fmt.Sprintf(
			"$ <appd> tx %s register-request 37 LUNA,BTC 1000000 16 10 --from owner",
			types.ModuleName,
		),
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			oracleScriptID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid oracle script id: %w", err)
			}

			multiplier, err := cast.ToUint64E(args[2])
			if err != nil {
				return fmt.Errorf("invalid multiplier: %w", err)
			}

			askCount, err := cast.ToUint64E(args[3])
			if err != nil {
				return fmt.Errorf("invalid ask count: %w", err)
			}

			minCount, err := cast.ToUint64E(args[4])
			if err != nil {
				return fmt.Errorf("invalid min count: %w", err)
			}

			msg := types.NewMsgRegisterRequest(
				clientCtx.GetFromAddress().String(),
				oracleScriptID,
				parseSymbols(args[1]),
				multiplier,
				askCount,
				minCount,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func NewSendRequestTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-request [request_id] --from [sender_address]",
		Short: "Send a registered request to BandChain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSendRequest(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func parseSymbols(arg string) []string {
	var symbols []string
	for _, symbol := range strings.Split(arg, ",") {
		if symbol = strings.TrimSpace(symbol); symbol != "" {
			symbols = append(symbols, symbol)
		}
	}
	return symbols
}

package bandoracle

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	clienttypes "github.com/cosmos/ibc-go/v6/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v6/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v6/modules/core/24-host"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/GPTx-global/bandoracle/x/bandoracle/types"
)

const (
	bandPort      = "oracle"
	bandChannel   = "channel-0"
	localChannel  = "channel-7"
	lunaResult    = "AAAAAQAAAAAB2QXA"
	twoRateResult = "AAAAAgAAAAAB2QXAAAAAAAAAAAU="
)

var _ = Describe("IBC module", func() {
	var (
		f       *testFixture
		im      IBCModule
		chanCap *capabilitytypes.Capability
		relayer sdk.AccAddress
	)

	counterparty := channeltypes.NewCounterparty(bandPort, bandChannel)

	openChannel := func(order channeltypes.Order, version string) {
		f.channelKeeper.On("GetChannel", mock.Anything, types.PortID, localChannel).
			Return(channeltypes.Channel{Ordering: order, Version: version}, true)
	}

	recv := func(data types.OracleResponsePacketData, destChannel string) channeltypes.Acknowledgement {
		packet := channeltypes.NewPacket(
			data.GetBytes(), 1,
			bandPort, bandChannel,
			types.PortID, destChannel,
			clienttypes.ZeroHeight(), 0,
		)
		ack := im.OnRecvPacket(f.ctx, packet, relayer)
		Expect(ack).ToNot(BeNil())

		var decoded channeltypes.Acknowledgement
		Expect(channeltypes.SubModuleCdc.UnmarshalJSON(ack.Acknowledgement(), &decoded)).To(Succeed())
		return decoded
	}

	BeforeEach(func() {
		f = setupTest(GinkgoT())
		im = NewIBCModule(f.keeper, f.channelKeeper)
		chanCap = capabilitytypes.NewCapability(3)
		relayer = sdk.AccAddress("relayer_____________")

		f.scopedKeeper.On("ClaimCapability", mock.Anything, chanCap, host.ChannelCapabilityPath(types.PortID, localChannel)).
			Return(nil).Maybe()
	})

	Describe("channel handshake", func() {
		DescribeTable("OnChanOpenInit",
			func(order channeltypes.Order, version string, expVersion string, expErr error) {
				v, err := im.OnChanOpenInit(f.ctx, order, []string{"connection-0"}, types.PortID, localChannel, chanCap, counterparty, version)
				if expErr != nil {
					Expect(err).To(MatchError(expErr))
					return
				}
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(Equal(expVersion))
			},
			Entry("unordered with version", channeltypes.UNORDERED, types.Version, types.Version, nil),
			Entry("empty version defaults", channeltypes.UNORDERED, "", types.Version, nil),
			Entry("ordered channel", channeltypes.ORDERED, types.Version, "", types.ErrOrderedChannelNotSupported),
			Entry("wrong version", channeltypes.UNORDERED, "ics20-1", "", types.ErrInvalidVersion),
		)

		It("rejects a foreign port on open", func() {
			_, err := im.OnChanOpenInit(f.ctx, channeltypes.UNORDERED, []string{"connection-0"}, "transfer", localChannel, chanCap, counterparty, types.Version)
			Expect(err).To(MatchError(types.ErrInvalidPort))
		})

		It("validates the counterparty version on try", func() {
			v, err := im.OnChanOpenTry(f.ctx, channeltypes.UNORDERED, []string{"connection-0"}, types.PortID, localChannel, chanCap, counterparty, types.Version)
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(types.Version))

			_, err = im.OnChanOpenTry(f.ctx, channeltypes.UNORDERED, []string{"connection-0"}, types.PortID, localChannel, chanCap, counterparty, "bandchain-2")
			Expect(err).To(MatchError(types.ErrInvalidVersion))
			Expect(err.Error()).To(ContainSubstring("got (bandchain-2), expected (bandchain-1)"))
		})

		It("validates the stored channel on ack and confirm", func() {
			openChannel(channeltypes.UNORDERED, types.Version)

			Expect(im.OnChanOpenAck(f.ctx, types.PortID, localChannel, bandChannel, types.Version)).To(Succeed())
			Expect(im.OnChanOpenAck(f.ctx, types.PortID, localChannel, bandChannel, "bandchain-2")).To(MatchError(types.ErrInvalidVersion))
			Expect(im.OnChanOpenConfirm(f.ctx, types.PortID, localChannel)).To(Succeed())

			events := f.ctx.EventManager().Events()
			Expect(events).ToNot(BeEmpty())
			Expect(events[len(events)-1].Type).To(Equal(types.EventTypeChannelConnected))
		})

		It("rejects an ordered stored channel on confirm", func() {
			openChannel(channeltypes.ORDERED, types.Version)
			Expect(im.OnChanOpenConfirm(f.ctx, types.PortID, localChannel)).To(MatchError(types.ErrOrderedChannelNotSupported))
		})

		It("fails to connect an unknown channel", func() {
			f.channelKeeper.On("GetChannel", mock.Anything, types.PortID, "channel-9").Return(channeltypes.Channel{}, false)
			Expect(im.OnChanOpenConfirm(f.ctx, types.PortID, "channel-9")).To(MatchError(types.ErrChannelNotFound))
		})

		It("is idempotent", func() {
			remote := "bandchain-2"
			first := types.ValidateHandshake(channeltypes.UNORDERED, types.Version, &remote)
			second := types.ValidateHandshake(channeltypes.UNORDERED, types.Version, &remote)
			Expect(first.Error()).To(Equal(second.Error()))
		})
	})

	Describe("channel close", func() {
		BeforeEach(func() {
			Expect(f.keeper.SetChannel(f.ctx, owner, localChannel)).To(Succeed())
		})

		It("clears the bound channel", func() {
			Expect(im.OnChanCloseConfirm(f.ctx, types.PortID, localChannel)).To(Succeed())

			config, _ := f.keeper.GetConfig(f.ctx)
			Expect(config.Channel).To(BeEmpty())
			Expect(config.Owner).To(Equal(owner.String()))

			_, err := f.keeper.RegisterRequest(f.ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
			Expect(err).ToNot(HaveOccurred())
			_, err = f.keeper.SendRequest(f.ctx, stranger, "tvl-1")
			Expect(err).To(MatchError(types.ErrChannelNotSet))
		})

		It("keeps the bound channel when another channel closes", func() {
			Expect(im.OnChanCloseInit(f.ctx, types.PortID, "channel-3")).To(Succeed())

			config, _ := f.keeper.GetConfig(f.ctx)
			Expect(config.Channel).To(Equal(localChannel))
		})
	})

	Describe("receiving responses", func() {
		var requestID string

		BeforeEach(func() {
			Expect(f.keeper.SetChannel(f.ctx, owner, localChannel)).To(Succeed())

			var err error
			requestID, err = f.keeper.RegisterRequest(f.ctx, owner, 37, []string{"LUNA"}, 1000000, 16, 10)
			Expect(err).ToNot(HaveOccurred())
		})

		response := func(clientID, status, result string) types.OracleResponsePacketData {
			return types.OracleResponsePacketData{
				ClientID:      clientID,
				RequestID:     "2037918",
				AnsCount:      "16",
				RequestTime:   "1699999990",
				ResolveTime:   "1700000000",
				ResolveStatus: status,
				Result:        result,
			}
		}

		It("stores the rate and acknowledges", func() {
			ack := recv(response(requestID, types.ResolveStatusSuccess, lunaResult), localChannel)
			Expect(ack.Success()).To(BeTrue())
			Expect(ack.GetResult()).To(Equal(types.AckSuccessMarker))

			price, found := f.keeper.GetPrice(f.ctx, "LUNA")
			Expect(found).To(BeTrue())
			Expect(price.Rate.Equal(sdk.NewDec(31))).To(BeTrue())
		})

		It("rejects a response on the wrong channel", func() {
			ack := recv(response(requestID, types.ResolveStatusSuccess, lunaResult), "channel-3")
			Expect(ack.Success()).To(BeFalse())
			Expect(ack.GetError()).To(ContainSubstring("wrong channel"))

			_, found := f.keeper.GetPrice(f.ctx, "LUNA")
			Expect(found).To(BeFalse())
		})

		It("rejects an unresolved request", func() {
			ack := recv(response(requestID, "RESOLVE_STATUS_FAILURE", ""), localChannel)
			Expect(ack.Success()).To(BeFalse())
			Expect(ack.GetError()).To(ContainSubstring("did not resolve successfully"))

			_, found := f.keeper.GetPrice(f.ctx, "LUNA")
			Expect(found).To(BeFalse())
		})

		It("rejects an arity mismatch without writing", func() {
			ack := recv(response(requestID, types.ResolveStatusSuccess, twoRateResult), localChannel)
			Expect(ack.GetError()).To(ContainSubstring("result and calldata length mismatched"))

			_, found := f.keeper.GetPrice(f.ctx, "LUNA")
			Expect(found).To(BeFalse())
		})

		It("rejects an undecodable packet", func() {
			packet := channeltypes.NewPacket([]byte("not json"), 1, bandPort, bandChannel, types.PortID, localChannel, clienttypes.ZeroHeight(), 0)
			ack := im.OnRecvPacket(f.ctx, packet, relayer)
			Expect(ack.Success()).To(BeFalse())

			var decoded map[string]string
			Expect(json.Unmarshal(ack.Acknowledgement(), &decoded)).To(Succeed())
			Expect(decoded["error"]).To(ContainSubstring("invalid oracle packet"))
		})
	})

	Describe("acknowledgements and timeouts", func() {
		var packet channeltypes.Packet

		BeforeEach(func() {
			data := types.NewOracleRequestPacketData("tvl-1", types.Request{OracleScriptID: 37, Calldata: []byte{1}})
			packet = channeltypes.NewPacket(data.GetBytes(), 5, types.PortID, localChannel, bandPort, bandChannel, clienttypes.ZeroHeight(), 0)
			f.ctx = f.ctx.WithEventManager(sdk.NewEventManager())
		})

		It("accepts an error acknowledgement", func() {
			ack := types.NewErrorAcknowledgement(types.ErrInvalidPacket)
			Expect(im.OnAcknowledgementPacket(f.ctx, packet, ack.Acknowledgement(), relayer)).To(Succeed())

			events := f.ctx.EventManager().Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(types.EventTypeRequestAcknowledged))
		})

		It("fails on a malformed acknowledgement", func() {
			Expect(im.OnAcknowledgementPacket(f.ctx, packet, []byte("{"), relayer)).ToNot(Succeed())
		})

		It("records timeouts", func() {
			Expect(im.OnTimeoutPacket(f.ctx, packet, relayer)).To(Succeed())

			events := f.ctx.EventManager().Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Type).To(Equal(types.EventTypeRequestTimeout))
		})
	})
})

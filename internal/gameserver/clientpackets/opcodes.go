// Package clientpackets defines the C2S message family carried on the
// game channels. Every message implements packet.Message; payloads
// exclude the frame header (opcode + sender net id).
package clientpackets

// C2S opcodes.
const (
	OpcodeTutorialAudioEventFinished uint8 = 0x05
	OpcodeSyncSimTime                uint8 = 0x08
	OpcodeRemoveItemReq              uint8 = 0x09
	OpcodeQueryStatusReq             uint8 = 0x17
	OpcodePingLoadInfo               uint8 = 0x19
	OpcodeWriteNavFlagsAcc           uint8 = 0x20
	OpcodeSwapItemReq                uint8 = 0x23
	OpcodeWorldSendCameraServer      uint8 = 0x30
	OpcodeNpcUpgradeSpellReq         uint8 = 0x3E
	OpcodeUseObject                  uint8 = 0x3F
	OpcodePlayEmote                  uint8 = 0x4C
	OpcodeScoreBoardOpened           uint8 = 0x4E
	OpcodeClientReady                uint8 = 0x55
	OpcodeStatsUpdateReq             uint8 = 0x59
	OpcodeMapPing                    uint8 = 0x5A
	OpcodeShopOpened                 uint8 = 0x60
	OpcodeTipEvent                   uint8 = 0x70
	OpcodeNpcIssueOrderReq           uint8 = 0x75
	OpcodeWorldLockCameraServer      uint8 = 0x86
	OpcodeBuyItemReq                 uint8 = 0x87
	OpcodeClientFinished             uint8 = 0x91
	OpcodeExit                       uint8 = 0x94
	OpcodeClientConnectNamedPipe     uint8 = 0x9A
	OpcodeTeamSurrenderVote          uint8 = 0xA4
	OpcodeReconnect                  uint8 = 0xAC
	OpcodeSendSelectedObjID          uint8 = 0xB7
	OpcodeSyncVersion                uint8 = 0xC5
	OpcodeCharSelected               uint8 = 0xC6
	OpcodeTutorialPopupClosed        uint8 = 0xD5
	OpcodeQuestEvent                 uint8 = 0xD6
	OpcodeRespawnPointEvent          uint8 = 0xDF
)

// Unit order kinds carried by CNpcIssueOrderReq.
const (
	OrderHold       uint8 = 1
	OrderMove       uint8 = 2
	OrderAttackMove uint8 = 7
	OrderStop       uint8 = 10
)

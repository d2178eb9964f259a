// Package serverpackets defines the S2C message family carried on the
// game channels. Every message implements packet.Message; payloads
// exclude the frame header (opcode + sender net id).
package serverpackets

// S2C opcodes.
const (
	OpcodeBarrackSpawnUnit               uint8 = 0x03
	OpcodeSetCircularMovementRestriction uint8 = 0x06
	OpcodeResumePacket                   uint8 = 0x0A
	OpcodeRemoveItemAns                  uint8 = 0x0B
	OpcodeBasicAttack                    uint8 = 0x0D
	OpcodeRefreshObjectiveText           uint8 = 0x0E
	OpcodeCloseShop                      uint8 = 0x0F
	OpcodeReconnect                      uint8 = 0x10
	OpcodeUnitAddExp                     uint8 = 0x11
	OpcodeEndSpawn                       uint8 = 0x12
	OpcodeTeamSurrenderCountDown         uint8 = 0x16
	OpcodeNpcUpgradeSpellAns             uint8 = 0x18
	OpcodeChangeSlotSpellType            uint8 = 0x1A
	OpcodeNpcMessageToClient             uint8 = 0x1B
	OpcodeDisplayFloatingText            uint8 = 0x1C
	OpcodeBasicAttackPos                 uint8 = 0x1D
	OpcodeNpcForceDeath                  uint8 = 0x1E
	OpcodeNpcBuffUpdateCount             uint8 = 0x1F
	OpcodeNpcBuffReplaceGroup            uint8 = 0x21
	OpcodeNpcSetAutocast                 uint8 = 0x22
	OpcodeNpcDeathEventHistory           uint8 = 0x24
	OpcodeUnitAddGold                    uint8 = 0x25
	OpcodeMoveCameraToPoint              uint8 = 0x27
	OpcodeLineMissileHitList             uint8 = 0x28
	OpcodeServerTick                     uint8 = 0x2A
	OpcodeStopAnimation                  uint8 = 0x2B
	OpcodeAvatarInfo                     uint8 = 0x2C
	OpcodeDampenerSwitch                 uint8 = 0x2D
	OpcodeWorldSendCameraServerAck       uint8 = 0x2E
	OpcodeNpcInstantStopAttack           uint8 = 0x39
	OpcodeOnLeaveLocalVisibilityClient   uint8 = 0x3A
	OpcodeShowObjectiveText              uint8 = 0x3B
	OpcodeCharSpawnPet                   uint8 = 0x3C
	OpcodeFxKill                         uint8 = 0x3D
	OpcodeMissileReplication             uint8 = 0x41
	OpcodeSwapItemAns                    uint8 = 0x44
	OpcodeMapPing                        uint8 = 0x46
	OpcodeWriteNavFlags                  uint8 = 0x47
	OpcodePlayEmote                      uint8 = 0x48
	OpcodeReconnectDone                  uint8 = 0x49
	OpcodeHeroReincarnate                uint8 = 0x4D
	OpcodeCreateHero                     uint8 = 0x4F
	OpcodeFaceDirection                  uint8 = 0x53
	OpcodeOnLeaveVisibilityClient        uint8 = 0x54
	OpcodeSetItem                        uint8 = 0x56
	OpcodeSyncVersion                    uint8 = 0x57
	OpcodeDestroyClientMissile           uint8 = 0x5D
	OpcodeLevelUpSpell                   uint8 = 0x5E
	OpcodeStartGame                      uint8 = 0x5F
	OpcodeNpcHeroDie                     uint8 = 0x61
	OpcodeWaypointGroup                  uint8 = 0x64
	OpcodeStartSpawn                     uint8 = 0x65
	OpcodeCreateNeutral                  uint8 = 0x66
	OpcodeWaypointGroupWithSpeed         uint8 = 0x67
	OpcodeUnitApplyDamage                uint8 = 0x68
	OpcodeModifyShield                   uint8 = 0x69
	OpcodeNpcBuffAddGroup                uint8 = 0x6B
	OpcodeSetAnimStates                  uint8 = 0x6E
	OpcodeBuyItemAns                     uint8 = 0x72
	OpcodeSetSpellData                   uint8 = 0x73
	OpcodePauseAnimation                 uint8 = 0x74
	OpcodeCameraBehavior                 uint8 = 0x76
	OpcodeConnected                      uint8 = 0x78
	OpcodeSyncSimTimeFinal               uint8 = 0x79
	OpcodeWaypointAcc                    uint8 = 0x7A
	OpcodeLockCamera                     uint8 = 0x7C
	OpcodeNpcBuffRemove                  uint8 = 0x7F
	OpcodeSpawnMinion                    uint8 = 0x80
	OpcodeToggleFoW                      uint8 = 0x82
	OpcodeToolTipVars                    uint8 = 0x83
	OpcodeUnitApplyHeal                  uint8 = 0x84
	OpcodeGlobalCombatMessage            uint8 = 0x85
	OpcodeWorldLockCameraServer          uint8 = 0x86
	OpcodeSetInputLockingFlag            uint8 = 0x89
	OpcodeCharSetCooldown                uint8 = 0x8A
	OpcodeCharCancelTargetingReticle     uint8 = 0x8B
	OpcodeFxCreateGroup                  uint8 = 0x8C
	OpcodeQueryStatusAns                 uint8 = 0x8D
	OpcodeServerGameSettings             uint8 = 0x95
	OpcodeWorldSendGameNumber            uint8 = 0x98
	OpcodeNpcBuffRemoveGroup             uint8 = 0x9B
	OpcodePingLoadInfo                   uint8 = 0x9D
	OpcodeExit                           uint8 = 0xA0
	OpcodeNpcCastSpellReq                uint8 = 0xA2
	OpcodeToggleInputLockingFlag         uint8 = 0xA3
	OpcodeCreateTurret                   uint8 = 0xA5
	OpcodeNpcDie                         uint8 = 0xA6
	OpcodeUseItemAns                     uint8 = 0xA7
	OpcodePausePacket                    uint8 = 0xA9
	OpcodeHideObjectiveText              uint8 = 0xAA
	OpcodeTeamSurrenderStatus            uint8 = 0xAD
	OpcodeOnReplicationAcc               uint8 = 0xB0
	OpcodeOnDisconnected                 uint8 = 0xB1
	OpcodeSetGreyscaleEnabledWhenDead    uint8 = 0xB2
	OpcodeSetFoWStatus                   uint8 = 0xB4
	OpcodeOnEnterLocalVisibilityClient   uint8 = 0xB5
	OpcodePlayAnimation                  uint8 = 0xB8
	OpcodeNpcCastSpellAns                uint8 = 0xBD
	OpcodeNpcBuffAdd                     uint8 = 0xBF
	OpcodeWaypointList                   uint8 = 0xC1
	OpcodeOnEnterVisibilityClient        uint8 = 0xC2
	OpcodeDisableHUDForEndOfGame         uint8 = 0xC4
	OpcodeNpcBuffUpdateCountGroup        uint8 = 0xC7
	OpcodeSyncSimTime                    uint8 = 0xC9
	OpcodeSyncMissionStartTime           uint8 = 0xCA
	OpcodeOnReplication                  uint8 = 0xCC
	OpcodeEndOfGameEvent                 uint8 = 0xCD
	OpcodeEndGame                        uint8 = 0xCE
	OpcodeTeamSurrenderVote              uint8 = 0xD2
	OpcodeShowHealthBar                  uint8 = 0xD7
	OpcodeSpawnLevelProp                 uint8 = 0xD9
	OpcodeUpdateLevelProp                uint8 = 0xDA
)

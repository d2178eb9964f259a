package serverpackets

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldrin/nexusgate/internal/gameserver/packet"
)

// roundTrip encodes m, decodes into a fresh instance of the same type
// and requires equality plus full stream consumption.
func roundTrip(t *testing.T, m packet.Message) {
	t.Helper()
	w := packet.NewWriter(256)
	require.NoError(t, m.Encode(w), "%T", m)

	fresh := reflect.New(reflect.TypeOf(m).Elem()).Interface().(packet.Message)
	r := packet.NewReader(w.Bytes())
	require.NoError(t, fresh.Decode(r), "%T", m)
	assert.Equal(t, m, fresh, "%T", m)
	assert.Equal(t, 0, r.Remaining(), "%T left %d bytes unread", m, r.Remaining())
}

func TestServerPacketRoundTrips(t *testing.T) {
	hero := &SCreateHero{
		UnitNetID:   0x40000001,
		ClientID:    2,
		NetNodeID:   0x40,
		SkillLevel:  1,
		TeamIsOrder: true,
		SkinID:      3,
		Name:        "PlayerOne",
		Skin:        "Nasus",
	}
	avatar := &SAvatarInfo{Level: 1}
	avatar.SummonerSpellIDs = [2]uint32{0x06496EA8, 0x0364AF1C}
	avatar.Talents[0] = packet.Talent{Hash: 0xDEAD, Level: 3}

	sync := &SSyncVersion{
		IsVersionOK: true,
		Map:         8,
		Version:     "4.20.0.315",
		MapMode:     "ODIN",
	}
	sync.PlayerInfo[0] = packet.PlayerLoadInfo{
		PlayerID:      100,
		SummonerLevel: 30,
		TeamID:        100,
		ProfileIconID: 7,
	}

	messages := []packet.Message{
		&SQueryStatusAns{IsOK: true},
		&SReconnect{ClientID: 5},
		&SReconnectDone{},
		&SConnected{ClientID: 1},
		&SExit{ClientID: 2},
		&SOnDisconnected{},
		&SWorldSendGameNumber{GameID: 12314},
		sync,
		&SSyncSimTime{SyncTime: 42.5},
		&SSyncSimTimeFinal{TimeLastClient: 1, TimeRttLastOverhead: 2, TimeConvergence: 3},
		&SSyncMissionStartTime{StartTime: 1.0},
		&SServerTick{Delta: 0.033},
		&SPingLoadInfo{ConnectionInfo: packet.ConnectionInfo{ClientID: 1, PlayerID: 100, Ping: 35, Ready: true}},
		&SWorldSendCameraServerAck{SyncID: 9},
		&SWorldLockCameraServer{Locked: true, ClientID: 3},
		&SStartGame{TournamentPauseEnabled: false},
		&SPausePacket{ClientID: 1, PauseTimeRemaining: 30, TournamentPause: true},
		&SResumePacket{ClientID: 1, Delayed: true},
		&SEndOfGameEvent{TeamIsOrder: true},
		&SEndGame{IsTeamOrderWin: true, IsSurrender: false},
		&SDisableHUDForEndOfGame{},
		&SStartSpawn{BotCountOrder: 0, BotCountChaos: 0},
		&SEndSpawn{},
		hero,
		avatar,
		&SSpawnMinion{UnitNetID: 0x40000010, UnitNetNodeID: 0x40, TeamID: 200,
			Flags: packet.SpawnMinionFlags{IsWard: true}, Name: "Ward", SkinName: "SightWard"},
		&SCreateNeutral{UnitNetID: 0x40000020, UnitNetNodeID: 0x40, Name: "Golem",
			SkinName: "AncientGolem", UniqueName: "Golem1", MinimapIcon: "camp"},
		&SCreateTurret{UnitNetID: 0xFF000001, UnitNetNodeID: 0xFF, Name: "Turret_T1_L_03_A"},
		&SSpawnLevelProp{UnitNetID: 0xFF000002, UnitNetNodeID: 0xFF, Name: "Prop", PropName: "Shrine"},
		&SBarrackSpawnUnit{UnitNetID: 0x40000030, UnitNetNodeID: 0x40, WaveCount: 3, MinionType: 1},
		&SCharSpawnPet{UnitNetID: 0x40000040, UnitNetNodeID: 0x40, Name: "Tibbers",
			Skin: "AnnieTibbers", BuffName: "InfernalGuardian",
			Flags: packet.CharSpawnPetFlags{CopyInventory: true}, AIScript: "PetAI"},
		&SWaypointGroup{SyncID: 1, Movements: []packet.MovementDataNormal{
			{TeleportNetID: 0x40000001, Waypoints: []packet.Waypoint{{1, 2}, {3, 4}}},
		}},
		&SWaypointGroupWithSpeed{SyncID: 2, Movements: []packet.MovementDataWithSpeed{
			{
				MovementDataNormal: packet.MovementDataNormal{
					TeleportNetID: 0x40000001,
					Waypoints:     []packet.Waypoint{{10, 10}, {20, 20}},
				},
				SpeedParams: packet.SpeedParams{PathSpeedOverride: 1600, Facing: true},
			},
		}},
		&SWaypointList{SyncID: 3, Entries: []packet.Vector2{{X: 1, Y: 2}, {X: 3, Y: 4}}},
		&SWaypointAcc{SyncID: 4, TeleportCount: 1},
		&SFaceDirection{Direction: packet.Vector3{X: 0, Y: 0, Z: 1}},
		&SOnEnterVisibilityClient{
			Items:    []packet.ItemData{{Slot: 0, ItemsInSlot: 1, ItemID: 1001}},
			Movement: &packet.MovementDataStop{Position: packet.Vector2{X: 5, Y: 6}},
		},
		&SOnLeaveVisibilityClient{},
		&SOnEnterLocalVisibilityClient{MaxHealth: 580, Health: 420},
		&SOnLeaveLocalVisibilityClient{},
		&SBasicAttack{BasicAttackData: packet.BasicAttackData{TargetNetID: 0x40000002, ExtraTime: 0.25, AttackSlot: 1}},
		&SBasicAttackPos{BasicAttackData: packet.BasicAttackData{TargetNetID: 9}, Position: packet.Vector2{X: 7, Y: 8}},
		&SUnitApplyDamage{DamageResultType: 4, TargetNetID: 1, SourceNetID: 2, Damage: 57.5},
		&SUnitApplyHeal{MaxHP: 600, Heal: 50},
		&SModifyShield{ShieldProperties: packet.ShieldProperties{Magical: true}, Amount: 80},
		&SNpcDie{DeathData: packet.DeathData{KillerNetID: 1, DamageType: 2, DeathDuration: 5}},
		&SNpcHeroDie{DeathData: packet.DeathData{KillerNetID: 3, BecomeZombie: true}},
		&SNpcForceDeath{},
		&SHeroReincarnate{Position: packet.Vector3{X: 100, Y: 50, Z: 100}},
		&SUnitAddExp{TargetNetID: 1, Amount: 42},
		&SUnitAddGold{TargetNetID: 1, SourceNetID: 2, GoldAmount: 300},
		&SGlobalCombatMessage{MessageType: 1, ObjectNameNetID: 2},
		&SNpcInstantStopAttack{KeepAnimating: true, DestroyMissile: true},
		&SNpcDeathEventHistory{KillerNetID: 1, TimeWindow: 10,
			Events: []packet.EventData{{TimeStamp: 1, Count: 2, SourceNetID: 3}}},
		&SNpcBuffAdd{BuffSlot: 1, BuffType: 2, Count: 1, BuffNameHash: 0xABCD, Duration: 5, CasterNetID: 9},
		&SNpcBuffRemove{BuffSlot: 1, BuffNameHash: 0xABCD},
		&SNpcBuffUpdateCount{BuffSlot: 1, Count: 3, Duration: 4, RunningTime: 1, CasterNetID: 2},
		&SNpcBuffAddGroup{BuffType: 1, BuffNameHash: 2, Duration: 3,
			Entries: []packet.BuffAddGroupEntry{{UnitNetID: 1, CasterNetID: 2, BuffSlot: 3, Count: 1}}},
		&SNpcBuffRemoveGroup{BuffNameHash: 5,
			Entries: []packet.BuffRemoveGroupEntry{{UnitNetID: 1, BuffSlot: 2}}},
		&SNpcBuffReplaceGroup{RunningTime: 1, Duration: 2,
			Entries: []packet.BuffReplaceGroupEntry{{UnitNetID: 1, CasterNetID: 2, BuffSlot: 3}}},
		&SNpcBuffUpdateCountGroup{Duration: 1, RunningTime: 2,
			Entries: []packet.BuffUpdateCountGroupEntry{{UnitNetID: 1, CasterNetID: 2, BuffSlot: 3, Count: 4}}},
		&SNpcCastSpellReq{SpellSlot: packet.SpellSlot{Slot: 2}, TargetNetID: 7},
		&SNpcCastSpellAns{CasterPointSyncID: 11, CastInfo: packet.CastInfo{
			SpellHash: 1, CasterNetID: 2, SpellSlot: 3,
			TargetsInfo: []packet.CastTargetInfo{{UnitNetID: 4, HitResult: 1}},
			Flags:       packet.CastInfoFlags{AutoAttack: true},
		}},
		&SSetSpellData{UnitNetID: 1, SpellNameHash: 2, SpellSlot: 3},
		&SLevelUpSpell{SpellSlot: 2},
		&SCharSetCooldown{SpellSlot: packet.SpellSlot{Slot: 1, IsSummonerSpell: true}, Cooldown: 180},
		&SCharCancelTargetingReticle{SpellSlot: packet.SpellSlot{Slot: 3}},
		&SChangeSlotSpellType{SpellSlot: packet.SpellSlot{Slot: 2}, TargetingType: 1},
		&SNpcSetAutocast{Slot: 2},
		&SNpcUpgradeSpellAns{Slot: 1, SpellLevel: 2, SkillPoints: 3},
		&SMissileReplication{Speed: 1200, LifePercentage: 0.5, Bounced: 1,
			CastInfo: packet.CastInfo{SpellHash: 7}},
		&SLineMissileHitList{TargetNetIDs: []uint32{1, 2, 3}},
		&SDestroyClientMissile{},
		&SFxKill{NetID: 4},
		&SFxCreateGroup{Entries: []packet.FxCreateGroupEntry{{
			EffectNameHash: 1, Flags: 2,
			FxCreateData: []packet.FxCreateGroupItem{{TargetNetID: 3, PositionX: 4, PositionY: 5.5}},
		}}},
		&SSetItem{Slot: 1, ItemID: 1001, ItemsInSlot: 2, SpellCharges: 0},
		&SRemoveItemAns{Slot: 1, ItemsInSlot: 0},
		&SSwapItemAns{Source: 1, Destination: 2},
		&SBuyItemAns{Slot: 3, ItemID: 1001, ItemsInSlot: 1, UseOnBought: true},
		&SUseItemAns{TargetNetID: 5},
		&SCloseShop{},
		&STeamSurrenderVote{Flags: packet.TeamSurrenderVoteFlags{VoteYes: true},
			PlayerNetID: 1, ForVote: 2, AgainstVote: 1, NumPlayers: 5, TeamID: 100, TimeOut: 30},
		&STeamSurrenderStatus{Reason: 1, ForVote: 3, AgainstVote: 2, TeamID: 200},
		&STeamSurrenderCountDown{TimeRemaining: 10},
		&SDampenerSwitch{Duration: 300, State: true},
		&SMapPing{Position: packet.Vector3{X: 1, Y: 2, Z: 3}, TargetNetID: 4, SourceNetID: 5,
			Flags: packet.MapPingFlags{Category: 5, PlayAudio: true, Throttled: true}},
		&SDisplayFloatingText{TargetNetID: 1, FloatingTextType: 2, Param: 3, Message: "First Blood"},
		&SNpcMessageToClient{TargetNetID: 1, BubbleDelay: 2, SlotNumber: 3, ColorIndex: 4, Message: "hello"},
		&SShowObjectiveText{TextID: "obj"},
		&SRefreshObjectiveText{TextID: "obj"},
		&SHideObjectiveText{},
		&SShowHealthBar{Show: true},
		&SPlayEmote{EmoteID: 2},
		&SPlayAnimation{Flags: 1, ScaleTime: 1.5, AnimationName: "Dance"},
		&SStopAnimation{Fade: true, StopAll: true},
		&SPauseAnimation{Pause: true},
		&SSetAnimStates{Overrides: []AnimOverride{{From: "Run", To: "RunFast"}}},
		&SOnReplication{SyncID: 1, ReplicationData: []packet.ReplicationData{{
			UnitNetID: 2,
			Groups: []packet.ReplicationGroup{{
				Key:    0,
				Values: []packet.ReplicationValue{{Key: 1, Value: 2}, {Key: 3, Value: 4}},
			}},
		}}},
		&SOnReplicationAcc{SyncID: 1},
		&SToolTipVars{TooltipVars: []packet.TooltipVars{{OwnerNetID: 1, SlotIndex: 2, Values: [3]float32{1, 2, 3}}}},
		&SWriteNavFlags{SyncID: 1, NavFlagCircles: []packet.NavFlagCircle{{Radius: 100, Flags: 3}}},
		&SUpdateLevelProp{UpdateData: packet.UpdateLevelPropData{StringParam0: "prop", Command: 2}},
		&SMoveCameraToPoint{StartFromCurrentPosition: true, TravelTime: 2},
		&SCameraBehavior{Position: packet.Vector3{X: 1, Y: 2, Z: 3}},
		&SLockCamera{Lock: true},
		&SSetCircularMovementRestriction{Radius: 500, RestrictCamera: true},
		&SSetInputLockingFlag{InputLockingFlags: 0xF, Value: true},
		&SToggleInputLockingFlag{InputLockingFlags: 0xF0},
		&SSetGreyscaleEnabledWhenDead{Enabled: true},
		&SSetFoWStatus{Enabled: true},
		&SToggleFoW{},
		&SServerGameSettings{FowLocalCulling: true},
	}

	seen := make(map[uint8]string)
	for _, m := range messages {
		roundTrip(t, m)
		name := reflect.TypeOf(m).Elem().Name()
		if prev, dup := seen[m.Opcode()]; dup {
			t.Fatalf("opcode 0x%02X used by both %s and %s", m.Opcode(), prev, name)
		}
		seen[m.Opcode()] = name
	}
}

func TestEndGameBitLayout(t *testing.T) {
	w := packet.NewWriter(1)
	require.NoError(t, (&SEndGame{IsTeamOrderWin: true, IsSurrender: true}).Encode(w))
	assert.Equal(t, byte(0b110), w.Bytes()[0])
}

func TestStopAnimationBitLayout(t *testing.T) {
	w := packet.NewWriter(1)
	require.NoError(t, (&SStopAnimation{Fade: true, IgnoreLock: true, StopAll: true}).Encode(w))
	assert.Equal(t, byte(0b10110), w.Bytes()[0])
}

func TestDampenerSwitchBitLayout(t *testing.T) {
	w := packet.NewWriter(2)
	require.NoError(t, (&SDampenerSwitch{Duration: 0x7FFF, State: true}).Encode(w))
	assert.Equal(t, []byte{0xFF, 0xFF}, w.Bytes())

	w = packet.NewWriter(2)
	require.NoError(t, (&SDampenerSwitch{Duration: 1, State: false}).Encode(w))
	assert.Equal(t, []byte{0x01, 0x00}, w.Bytes())
}

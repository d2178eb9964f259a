package clientpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// RemoveItemReq drops or sells an inventory slot. Packs into a single
// byte: bits0..6=slot, bit7=sell.
type RemoveItemReq struct {
	Slot uint8
	Sell bool
}

// Opcode returns the packet id.
func (*RemoveItemReq) Opcode() uint8 { return OpcodeRemoveItemReq }

// Encode writes the packed byte.
func (p *RemoveItemReq) Encode(w *packet.Writer) error {
	b := p.Slot & 0x7F
	if p.Sell {
		b |= 0x80
	}
	w.WriteUint8(b)
	return nil
}

// Decode reads the packed byte.
func (p *RemoveItemReq) Decode(r *packet.Reader) error {
	b, err := r.ReadUint8()
	p.Slot = b & 0x7F
	p.Sell = b&0x80 != 0
	return err
}

// CSwapItemReq swaps two inventory slots.
type CSwapItemReq struct {
	Source      uint8
	Destination uint8
}

// Opcode returns the packet id.
func (*CSwapItemReq) Opcode() uint8 { return OpcodeSwapItemReq }

// Encode writes the payload.
func (p *CSwapItemReq) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Source)
	w.WriteUint8(p.Destination)
	return nil
}

// Decode reads the payload.
func (p *CSwapItemReq) Decode(r *packet.Reader) error {
	var err error
	if p.Source, err = r.ReadUint8(); err != nil {
		return err
	}
	p.Destination, err = r.ReadUint8()
	return err
}

// CBuyItemReq buys an item from the shop.
type CBuyItemReq struct {
	ItemID uint32
}

// Opcode returns the packet id.
func (*CBuyItemReq) Opcode() uint8 { return OpcodeBuyItemReq }

// Encode writes the payload.
func (p *CBuyItemReq) Encode(w *packet.Writer) error {
	w.WriteUint32(p.ItemID)
	return nil
}

// Decode reads the payload.
func (p *CBuyItemReq) Decode(r *packet.Reader) error {
	var err error
	p.ItemID, err = r.ReadUint32()
	return err
}

// CNpcUpgradeSpellReq levels up a spell slot.
type CNpcUpgradeSpellReq struct {
	Slot uint8
}

// Opcode returns the packet id.
func (*CNpcUpgradeSpellReq) Opcode() uint8 { return OpcodeNpcUpgradeSpellReq }

// Encode writes the payload.
func (p *CNpcUpgradeSpellReq) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	return nil
}

// Decode reads the payload.
func (p *CNpcUpgradeSpellReq) Decode(r *packet.Reader) error {
	var err error
	p.Slot, err = r.ReadUint8()
	return err
}

package serverpackets

import "github.com/veldrin/nexusgate/internal/gameserver/packet"

// SSetItem places an item into a slot.
type SSetItem struct {
	Slot         uint8
	ItemID       uint32
	ItemsInSlot  uint8
	SpellCharges uint8
}

// Opcode returns the packet id.
func (*SSetItem) Opcode() uint8 { return OpcodeSetItem }

// Encode writes the payload.
func (p *SSetItem) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	w.WriteUint32(p.ItemID)
	w.WriteUint8(p.ItemsInSlot)
	w.WriteUint8(p.SpellCharges)
	return nil
}

// Decode reads the payload.
func (p *SSetItem) Decode(r *packet.Reader) error {
	var err error
	if p.Slot, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.ItemID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ItemsInSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	p.SpellCharges, err = r.ReadUint8()
	return err
}

// SRemoveItemAns confirms an item removal.
type SRemoveItemAns struct {
	Slot        uint8
	ItemsInSlot uint8
}

// Opcode returns the packet id.
func (*SRemoveItemAns) Opcode() uint8 { return OpcodeRemoveItemAns }

// Encode writes the payload.
func (p *SRemoveItemAns) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	w.WriteUint8(p.ItemsInSlot)
	return nil
}

// Decode reads the payload.
func (p *SRemoveItemAns) Decode(r *packet.Reader) error {
	var err error
	if p.Slot, err = r.ReadUint8(); err != nil {
		return err
	}
	p.ItemsInSlot, err = r.ReadUint8()
	return err
}

// SSwapItemAns confirms an item swap.
type SSwapItemAns struct {
	Source      uint8
	Destination uint8
}

// Opcode returns the packet id.
func (*SSwapItemAns) Opcode() uint8 { return OpcodeSwapItemAns }

// Encode writes the payload.
func (p *SSwapItemAns) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Source)
	w.WriteUint8(p.Destination)
	return nil
}

// Decode reads the payload.
func (p *SSwapItemAns) Decode(r *packet.Reader) error {
	var err error
	if p.Source, err = r.ReadUint8(); err != nil {
		return err
	}
	p.Destination, err = r.ReadUint8()
	return err
}

// SBuyItemAns confirms a purchase.
type SBuyItemAns struct {
	Slot        uint8
	ItemID      uint32
	ItemsInSlot uint8
	UseOnBought bool
}

// Opcode returns the packet id.
func (*SBuyItemAns) Opcode() uint8 { return OpcodeBuyItemAns }

// Encode writes the payload.
func (p *SBuyItemAns) Encode(w *packet.Writer) error {
	w.WriteUint8(p.Slot)
	w.WriteUint32(p.ItemID)
	w.WriteUint8(p.ItemsInSlot)
	w.WriteBool(p.UseOnBought)
	return nil
}

// Decode reads the payload.
func (p *SBuyItemAns) Decode(r *packet.Reader) error {
	var err error
	if p.Slot, err = r.ReadUint8(); err != nil {
		return err
	}
	if p.ItemID, err = r.ReadUint32(); err != nil {
		return err
	}
	if p.ItemsInSlot, err = r.ReadUint8(); err != nil {
		return err
	}
	p.UseOnBought, err = r.ReadBool()
	return err
}

// SUseItemAns confirms an item use.
type SUseItemAns struct {
	TargetNetID uint32
}

// Opcode returns the packet id.
func (*SUseItemAns) Opcode() uint8 { return OpcodeUseItemAns }

// Encode writes the payload.
func (p *SUseItemAns) Encode(w *packet.Writer) error {
	w.WriteUint32(p.TargetNetID)
	return nil
}

// Decode reads the payload.
func (p *SUseItemAns) Decode(r *packet.Reader) error {
	var err error
	p.TargetNetID, err = r.ReadUint32()
	return err
}

// SCloseShop closes the shop window.
type SCloseShop struct{}

// Opcode returns the packet id.
func (*SCloseShop) Opcode() uint8 { return OpcodeCloseShop }

// Encode writes the payload.
func (*SCloseShop) Encode(*packet.Writer) error { return nil }

// Decode reads the payload.
func (*SCloseShop) Decode(*packet.Reader) error { return nil }

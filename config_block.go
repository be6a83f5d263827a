package tabstate

import "pkt.systems/tabstate/schema"

// decodeConfigBlock reads the three view flags, the version varint and two
// reserved bytes, in that order.
func (d *Decoder) decodeConfigBlock() (schema.ConfigBlock, error) {
	var cfg schema.ConfigBlock
	var err error
	if cfg.WordWrap, err = d.flag("config_block.word_wrap"); err != nil {
		return schema.ConfigBlock{}, err
	}
	if cfg.RightToLeft, err = d.flag("config_block.rtl"); err != nil {
		return schema.ConfigBlock{}, err
	}
	if cfg.ShowUnicodeControl, err = d.flag("config_block.show_unicode"); err != nil {
		return schema.ConfigBlock{}, err
	}
	if cfg.Version, err = d.uvarint("config_block.version"); err != nil {
		return schema.ConfigBlock{}, err
	}
	if err := d.fixedInto("config_block.reserved", cfg.Reserved[:]); err != nil {
		return schema.ConfigBlock{}, err
	}
	return cfg, nil
}

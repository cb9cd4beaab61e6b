// Package item defines the item catalog: every distinct item identity the
// randomizer knows about, its logic classification, and the bijective
// token registry used at the host boundary.
//
// Items belong to a Family. Tiered families (swords, gloves, the tool
// upgrades) report the highest tier held, so holding Sword03 satisfies a
// "Sword >= 2" requirement. Counted families (small keys, ores, pendants,
// sages) report how many members are held.
package item

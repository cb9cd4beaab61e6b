package item

// Item identities. The zero value None marks an unassigned check.
const (
	None Item = iota
	Bow01
	Bow02
	Boomerang01
	Boomerang02
	Hookshot01
	Hookshot02
	Bombs01
	Bombs02
	FireRod01
	FireRod02
	IceRod01
	IceRod02
	Hammer01
	Hammer02
	SandRod01
	SandRod02
	TornadoRod01
	TornadoRod02
	Bell
	StaminaScroll
	BowOfLight
	PegasusBoots
	Flippers
	RaviosBracelet01
	RaviosBracelet02
	HylianShield
	SmoothGem
	LetterInABottle
	PremiumMilk
	Pouch
	BeeBadge
	HintGlasses
	RupeeGreen
	RupeeBlue
	RupeeRed
	RupeePurple01
	RupeePurple02
	RupeePurple03
	RupeePurple04
	RupeePurple05
	RupeePurple06
	RupeePurple07
	RupeePurple08
	RupeePurple09
	RupeePurple10
	RupeePurple11
	RupeePurple12
	RupeePurple13
	RupeePurple14
	RupeePurple15
	RupeePurple16
	RupeePurple17
	RupeePurple18
	RupeeSilver01
	RupeeSilver02
	RupeeSilver03
	RupeeSilver04
	RupeeSilver05
	RupeeSilver06
	RupeeSilver07
	RupeeSilver08
	RupeeSilver09
	RupeeSilver10
	RupeeSilver11
	RupeeSilver12
	RupeeSilver13
	RupeeSilver14
	RupeeSilver15
	RupeeSilver16
	RupeeSilver17
	RupeeSilver18
	RupeeSilver19
	RupeeSilver20
	RupeeSilver21
	RupeeSilver22
	RupeeSilver23
	RupeeSilver24
	RupeeSilver25
	RupeeSilver26
	RupeeSilver27
	RupeeSilver28
	RupeeSilver29
	RupeeSilver30
	RupeeSilver31
	RupeeSilver32
	RupeeSilver33
	RupeeSilver34
	RupeeSilver35
	RupeeSilver36
	RupeeSilver37
	RupeeSilver38
	RupeeGold01
	RupeeGold02
	RupeeGold03
	RupeeGold04
	RupeeGold05
	RupeeGold06
	RupeeGold07
	RupeeGold08
	MonsterGuts
	MonsterHorn
	MonsterTail
	HeartPiece01
	HeartPiece02
	HeartPiece03
	HeartPiece04
	HeartPiece05
	HeartPiece06
	HeartPiece07
	HeartPiece08
	HeartPiece09
	HeartPiece10
	HeartPiece11
	HeartPiece12
	HeartPiece13
	HeartPiece14
	HeartPiece15
	HeartPiece16
	HeartPiece17
	HeartPiece18
	HeartPiece19
	HeartPiece20
	HeartPiece21
	HeartPiece22
	HeartPiece23
	HeartPiece24
	HeartPiece25
	HeartPiece26
	HeartPiece27
	HeartContainer01
	HeartContainer02
	HeartContainer03
	HeartContainer04
	HeartContainer05
	HeartContainer06
	HeartContainer07
	HeartContainer08
	HeartContainer09
	HeartContainer10
	Bottle01
	Bottle02
	Bottle03
	Bottle04
	Bottle05
	Lamp01
	Lamp02
	Sword01
	Sword02
	Sword03
	Sword04
	Glove01
	Glove02
	Net01
	Net02
	Mail01
	Mail02
	OreYellow
	OreGreen
	OreBlue
	OreRed
	HyruleSanctuaryKey
	LoruleSanctuaryKey
	EasternCompass
	EasternKeyBig
	EasternKeySmall01
	EasternKeySmall02
	GalesCompass
	GalesKeyBig
	GalesKeySmall01
	GalesKeySmall02
	GalesKeySmall03
	GalesKeySmall04
	HeraCompass
	HeraKeyBig
	HeraKeySmall01
	HeraKeySmall02
	DarkCompass
	DarkKeyBig
	DarkKeySmall01
	DarkKeySmall02
	DarkKeySmall03
	DarkKeySmall04
	SwampCompass
	SwampKeyBig
	SwampKeySmall01
	SwampKeySmall02
	SwampKeySmall03
	SwampKeySmall04
	SkullCompass
	SkullKeyBig
	SkullKeySmall01
	SkullKeySmall02
	SkullKeySmall03
	ThievesCompass
	ThievesKeyBig
	ThievesKeySmall
	IceCompass
	IceKeyBig
	IceKeySmall01
	IceKeySmall02
	IceKeySmall03
	DesertCompass
	DesertKeyBig
	DesertKeySmall01
	DesertKeySmall02
	DesertKeySmall03
	DesertKeySmall04
	DesertKeySmall05
	TurtleCompass
	TurtleKeyBig
	TurtleKeySmall01
	TurtleKeySmall02
	TurtleKeySmall03
	LoruleCastleCompass
	LoruleCastleKeySmall01
	LoruleCastleKeySmall02
	LoruleCastleKeySmall03
	LoruleCastleKeySmall04
	LoruleCastleKeySmall05
	PendantOfCourage
	PendantOfWisdom
	PendantOfPower
	SageGulley
	SageOren
	SageSeres
	SageOsfala
	SageRosso
	SageIrene
	SageImpa
	ScootFruit
	FoulFruit
	Shield
	GoldBee
	OpenSanctuaryDoors
	BigBombFlower
	StylishWomansHouseOpen
	SkullEyeRight
	SkullEyeLeft
	AccessPotionShop
	AccessMilkBar
	AccessHyruleBlacksmith
	AccessLoruleCastleField
	Triforce

	numItems
)

// catalog is the forward table; the token registry is derived from it.
var catalog = [numItems]entry{
	Bow01:                   {token: "Bow01", class: ClassProgression, family: "Bow", tier: 1},
	Bow02:                   {token: "Bow02", class: ClassTrash, family: "Bow", tier: 2},
	Boomerang01:             {token: "Boomerang01", class: ClassProgression, family: "Boomerang", tier: 1},
	Boomerang02:             {token: "Boomerang02", class: ClassTrash, family: "Boomerang", tier: 2},
	Hookshot01:              {token: "Hookshot01", class: ClassProgression, family: "Hookshot", tier: 1},
	Hookshot02:              {token: "Hookshot02", class: ClassTrash, family: "Hookshot", tier: 2},
	Bombs01:                 {token: "Bombs01", class: ClassProgression, family: "Bombs", tier: 1},
	Bombs02:                 {token: "Bombs02", class: ClassTrash, family: "Bombs", tier: 2},
	FireRod01:               {token: "FireRod01", class: ClassProgression, family: "FireRod", tier: 1},
	FireRod02:               {token: "FireRod02", class: ClassTrash, family: "FireRod", tier: 2},
	IceRod01:                {token: "IceRod01", class: ClassProgression, family: "IceRod", tier: 1},
	IceRod02:                {token: "IceRod02", class: ClassTrash, family: "IceRod", tier: 2},
	Hammer01:                {token: "Hammer01", class: ClassProgression, family: "Hammer", tier: 1},
	Hammer02:                {token: "Hammer02", class: ClassTrash, family: "Hammer", tier: 2},
	SandRod01:               {token: "SandRod01", class: ClassProgression, family: "SandRod", tier: 1},
	SandRod02:               {token: "SandRod02", class: ClassTrash, family: "SandRod", tier: 2},
	TornadoRod01:            {token: "TornadoRod01", class: ClassProgression, family: "TornadoRod", tier: 1},
	TornadoRod02:            {token: "TornadoRod02", class: ClassTrash, family: "TornadoRod", tier: 2},
	Bell:                    {token: "Bell", class: ClassProgression, family: "Bell", tier: 0},
	StaminaScroll:           {token: "StaminaScroll", class: ClassTrash, family: "StaminaScroll", tier: 0},
	BowOfLight:              {token: "BowOfLight", class: ClassProgression, family: "BowOfLight", tier: 0},
	PegasusBoots:            {token: "PegasusBoots", class: ClassProgression, family: "PegasusBoots", tier: 0},
	Flippers:                {token: "Flippers", class: ClassProgression, family: "Flippers", tier: 0},
	RaviosBracelet01:        {token: "RaviosBracelet01", class: ClassProgression, family: "RaviosBracelet", tier: 1},
	RaviosBracelet02:        {token: "RaviosBracelet02", class: ClassProgression, family: "RaviosBracelet", tier: 2},
	HylianShield:            {token: "HylianShield", class: ClassTrash, family: "HylianShield", tier: 0},
	SmoothGem:               {token: "SmoothGem", class: ClassProgression, family: "SmoothGem", tier: 0},
	LetterInABottle:         {token: "LetterInABottle", class: ClassProgression, family: "LetterInABottle", tier: 0},
	PremiumMilk:             {token: "PremiumMilk", class: ClassProgression, family: "PremiumMilk", tier: 0},
	Pouch:                   {token: "Pouch", class: ClassTrash, family: "Pouch", tier: 0},
	BeeBadge:                {token: "BeeBadge", class: ClassProgression, family: "BeeBadge", tier: 0},
	HintGlasses:             {token: "HintGlasses", class: ClassTrash, family: "HintGlasses", tier: 0},
	RupeeGreen:              {token: "RupeeGreen", class: ClassTrash, family: "RupeeGreen", tier: 0},
	RupeeBlue:               {token: "RupeeBlue", class: ClassTrash, family: "RupeeBlue", tier: 0},
	RupeeRed:                {token: "RupeeRed", class: ClassTrash, family: "RupeeRed", tier: 0},
	RupeePurple01:           {token: "RupeePurple01", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple02:           {token: "RupeePurple02", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple03:           {token: "RupeePurple03", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple04:           {token: "RupeePurple04", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple05:           {token: "RupeePurple05", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple06:           {token: "RupeePurple06", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple07:           {token: "RupeePurple07", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple08:           {token: "RupeePurple08", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple09:           {token: "RupeePurple09", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple10:           {token: "RupeePurple10", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple11:           {token: "RupeePurple11", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple12:           {token: "RupeePurple12", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple13:           {token: "RupeePurple13", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple14:           {token: "RupeePurple14", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple15:           {token: "RupeePurple15", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple16:           {token: "RupeePurple16", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple17:           {token: "RupeePurple17", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeePurple18:           {token: "RupeePurple18", class: ClassTrash, family: "RupeePurple", tier: 0},
	RupeeSilver01:           {token: "RupeeSilver01", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver02:           {token: "RupeeSilver02", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver03:           {token: "RupeeSilver03", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver04:           {token: "RupeeSilver04", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver05:           {token: "RupeeSilver05", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver06:           {token: "RupeeSilver06", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver07:           {token: "RupeeSilver07", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver08:           {token: "RupeeSilver08", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver09:           {token: "RupeeSilver09", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver10:           {token: "RupeeSilver10", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver11:           {token: "RupeeSilver11", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver12:           {token: "RupeeSilver12", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver13:           {token: "RupeeSilver13", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver14:           {token: "RupeeSilver14", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver15:           {token: "RupeeSilver15", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver16:           {token: "RupeeSilver16", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver17:           {token: "RupeeSilver17", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver18:           {token: "RupeeSilver18", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver19:           {token: "RupeeSilver19", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver20:           {token: "RupeeSilver20", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver21:           {token: "RupeeSilver21", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver22:           {token: "RupeeSilver22", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver23:           {token: "RupeeSilver23", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver24:           {token: "RupeeSilver24", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver25:           {token: "RupeeSilver25", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver26:           {token: "RupeeSilver26", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver27:           {token: "RupeeSilver27", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver28:           {token: "RupeeSilver28", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver29:           {token: "RupeeSilver29", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver30:           {token: "RupeeSilver30", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver31:           {token: "RupeeSilver31", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver32:           {token: "RupeeSilver32", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver33:           {token: "RupeeSilver33", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver34:           {token: "RupeeSilver34", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver35:           {token: "RupeeSilver35", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver36:           {token: "RupeeSilver36", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver37:           {token: "RupeeSilver37", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeSilver38:           {token: "RupeeSilver38", class: ClassTrash, family: "RupeeSilver", tier: 0},
	RupeeGold01:             {token: "RupeeGold01", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold02:             {token: "RupeeGold02", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold03:             {token: "RupeeGold03", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold04:             {token: "RupeeGold04", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold05:             {token: "RupeeGold05", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold06:             {token: "RupeeGold06", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold07:             {token: "RupeeGold07", class: ClassTrash, family: "RupeeGold", tier: 0},
	RupeeGold08:             {token: "RupeeGold08", class: ClassTrash, family: "RupeeGold", tier: 0},
	MonsterGuts:             {token: "MonsterGuts", class: ClassTrash, family: "MonsterGuts", tier: 0},
	MonsterHorn:             {token: "MonsterHorn", class: ClassTrash, family: "MonsterHorn", tier: 0},
	MonsterTail:             {token: "MonsterTail", class: ClassTrash, family: "MonsterTail", tier: 0},
	HeartPiece01:            {token: "HeartPiece01", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece02:            {token: "HeartPiece02", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece03:            {token: "HeartPiece03", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece04:            {token: "HeartPiece04", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece05:            {token: "HeartPiece05", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece06:            {token: "HeartPiece06", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece07:            {token: "HeartPiece07", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece08:            {token: "HeartPiece08", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece09:            {token: "HeartPiece09", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece10:            {token: "HeartPiece10", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece11:            {token: "HeartPiece11", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece12:            {token: "HeartPiece12", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece13:            {token: "HeartPiece13", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece14:            {token: "HeartPiece14", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece15:            {token: "HeartPiece15", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece16:            {token: "HeartPiece16", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece17:            {token: "HeartPiece17", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece18:            {token: "HeartPiece18", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece19:            {token: "HeartPiece19", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece20:            {token: "HeartPiece20", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece21:            {token: "HeartPiece21", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece22:            {token: "HeartPiece22", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece23:            {token: "HeartPiece23", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece24:            {token: "HeartPiece24", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece25:            {token: "HeartPiece25", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece26:            {token: "HeartPiece26", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartPiece27:            {token: "HeartPiece27", class: ClassTrash, family: "HeartPiece", tier: 0},
	HeartContainer01:        {token: "HeartContainer01", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer02:        {token: "HeartContainer02", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer03:        {token: "HeartContainer03", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer04:        {token: "HeartContainer04", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer05:        {token: "HeartContainer05", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer06:        {token: "HeartContainer06", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer07:        {token: "HeartContainer07", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer08:        {token: "HeartContainer08", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer09:        {token: "HeartContainer09", class: ClassTrash, family: "HeartContainer", tier: 0},
	HeartContainer10:        {token: "HeartContainer10", class: ClassTrash, family: "HeartContainer", tier: 0},
	Bottle01:                {token: "Bottle01", class: ClassProgression, family: "Bottle", tier: 0},
	Bottle02:                {token: "Bottle02", class: ClassTrash, family: "Bottle", tier: 0},
	Bottle03:                {token: "Bottle03", class: ClassTrash, family: "Bottle", tier: 0},
	Bottle04:                {token: "Bottle04", class: ClassTrash, family: "Bottle", tier: 0},
	Bottle05:                {token: "Bottle05", class: ClassTrash, family: "Bottle", tier: 0},
	Lamp01:                  {token: "Lamp01", class: ClassProgression, family: "Lamp", tier: 1},
	Lamp02:                  {token: "Lamp02", class: ClassSuper, family: "Lamp", tier: 2},
	Sword01:                 {token: "Sword01", class: ClassSword, family: "Sword", tier: 1},
	Sword02:                 {token: "Sword02", class: ClassSword, family: "Sword", tier: 2},
	Sword03:                 {token: "Sword03", class: ClassSword, family: "Sword", tier: 3},
	Sword04:                 {token: "Sword04", class: ClassSword, family: "Sword", tier: 4},
	Glove01:                 {token: "Glove01", class: ClassProgression, family: "Glove", tier: 1},
	Glove02:                 {token: "Glove02", class: ClassProgression, family: "Glove", tier: 2},
	Net01:                   {token: "Net01", class: ClassProgression, family: "Net", tier: 1},
	Net02:                   {token: "Net02", class: ClassSuper, family: "Net", tier: 2},
	Mail01:                  {token: "Mail01", class: ClassTrash, family: "Mail", tier: 1},
	Mail02:                  {token: "Mail02", class: ClassTrash, family: "Mail", tier: 2},
	OreYellow:               {token: "OreYellow", class: ClassProgression, family: "Ore", tier: 0},
	OreGreen:                {token: "OreGreen", class: ClassProgression, family: "Ore", tier: 0},
	OreBlue:                 {token: "OreBlue", class: ClassProgression, family: "Ore", tier: 0},
	OreRed:                  {token: "OreRed", class: ClassProgression, family: "Ore", tier: 0},
	HyruleSanctuaryKey:      {token: "HyruleSanctuaryKey", class: ClassProgression, family: "HyruleSanctuaryKey", tier: 0},
	LoruleSanctuaryKey:      {token: "LoruleSanctuaryKey", class: ClassProgression, family: "LoruleSanctuaryKey", tier: 0},
	EasternCompass:          {token: "EasternCompass", class: ClassTrash, family: "EasternCompass", tier: 0},
	EasternKeyBig:           {token: "EasternKeyBig", class: ClassProgression, family: "EasternKeyBig", tier: 0},
	EasternKeySmall01:       {token: "EasternKeySmall01", class: ClassProgression, family: "EasternKeySmall", tier: 0},
	EasternKeySmall02:       {token: "EasternKeySmall02", class: ClassProgression, family: "EasternKeySmall", tier: 0},
	GalesCompass:            {token: "GalesCompass", class: ClassTrash, family: "GalesCompass", tier: 0},
	GalesKeyBig:             {token: "GalesKeyBig", class: ClassProgression, family: "GalesKeyBig", tier: 0},
	GalesKeySmall01:         {token: "GalesKeySmall01", class: ClassProgression, family: "GalesKeySmall", tier: 0},
	GalesKeySmall02:         {token: "GalesKeySmall02", class: ClassProgression, family: "GalesKeySmall", tier: 0},
	GalesKeySmall03:         {token: "GalesKeySmall03", class: ClassProgression, family: "GalesKeySmall", tier: 0},
	GalesKeySmall04:         {token: "GalesKeySmall04", class: ClassProgression, family: "GalesKeySmall", tier: 0},
	HeraCompass:             {token: "HeraCompass", class: ClassTrash, family: "HeraCompass", tier: 0},
	HeraKeyBig:              {token: "HeraKeyBig", class: ClassProgression, family: "HeraKeyBig", tier: 0},
	HeraKeySmall01:          {token: "HeraKeySmall01", class: ClassProgression, family: "HeraKeySmall", tier: 0},
	HeraKeySmall02:          {token: "HeraKeySmall02", class: ClassProgression, family: "HeraKeySmall", tier: 0},
	DarkCompass:             {token: "DarkCompass", class: ClassTrash, family: "DarkCompass", tier: 0},
	DarkKeyBig:              {token: "DarkKeyBig", class: ClassProgression, family: "DarkKeyBig", tier: 0},
	DarkKeySmall01:          {token: "DarkKeySmall01", class: ClassProgression, family: "DarkKeySmall", tier: 0},
	DarkKeySmall02:          {token: "DarkKeySmall02", class: ClassProgression, family: "DarkKeySmall", tier: 0},
	DarkKeySmall03:          {token: "DarkKeySmall03", class: ClassProgression, family: "DarkKeySmall", tier: 0},
	DarkKeySmall04:          {token: "DarkKeySmall04", class: ClassProgression, family: "DarkKeySmall", tier: 0},
	SwampCompass:            {token: "SwampCompass", class: ClassTrash, family: "SwampCompass", tier: 0},
	SwampKeyBig:             {token: "SwampKeyBig", class: ClassProgression, family: "SwampKeyBig", tier: 0},
	SwampKeySmall01:         {token: "SwampKeySmall01", class: ClassProgression, family: "SwampKeySmall", tier: 0},
	SwampKeySmall02:         {token: "SwampKeySmall02", class: ClassProgression, family: "SwampKeySmall", tier: 0},
	SwampKeySmall03:         {token: "SwampKeySmall03", class: ClassProgression, family: "SwampKeySmall", tier: 0},
	SwampKeySmall04:         {token: "SwampKeySmall04", class: ClassProgression, family: "SwampKeySmall", tier: 0},
	SkullCompass:            {token: "SkullCompass", class: ClassTrash, family: "SkullCompass", tier: 0},
	SkullKeyBig:             {token: "SkullKeyBig", class: ClassProgression, family: "SkullKeyBig", tier: 0},
	SkullKeySmall01:         {token: "SkullKeySmall01", class: ClassProgression, family: "SkullKeySmall", tier: 0},
	SkullKeySmall02:         {token: "SkullKeySmall02", class: ClassProgression, family: "SkullKeySmall", tier: 0},
	SkullKeySmall03:         {token: "SkullKeySmall03", class: ClassProgression, family: "SkullKeySmall", tier: 0},
	ThievesCompass:          {token: "ThievesCompass", class: ClassTrash, family: "ThievesCompass", tier: 0},
	ThievesKeyBig:           {token: "ThievesKeyBig", class: ClassProgression, family: "ThievesKeyBig", tier: 0},
	ThievesKeySmall:         {token: "ThievesKeySmall", class: ClassProgression, family: "ThievesKeySmall", tier: 0},
	IceCompass:              {token: "IceCompass", class: ClassTrash, family: "IceCompass", tier: 0},
	IceKeyBig:               {token: "IceKeyBig", class: ClassProgression, family: "IceKeyBig", tier: 0},
	IceKeySmall01:           {token: "IceKeySmall01", class: ClassProgression, family: "IceKeySmall", tier: 0},
	IceKeySmall02:           {token: "IceKeySmall02", class: ClassProgression, family: "IceKeySmall", tier: 0},
	IceKeySmall03:           {token: "IceKeySmall03", class: ClassProgression, family: "IceKeySmall", tier: 0},
	DesertCompass:           {token: "DesertCompass", class: ClassTrash, family: "DesertCompass", tier: 0},
	DesertKeyBig:            {token: "DesertKeyBig", class: ClassProgression, family: "DesertKeyBig", tier: 0},
	DesertKeySmall01:        {token: "DesertKeySmall01", class: ClassProgression, family: "DesertKeySmall", tier: 0},
	DesertKeySmall02:        {token: "DesertKeySmall02", class: ClassProgression, family: "DesertKeySmall", tier: 0},
	DesertKeySmall03:        {token: "DesertKeySmall03", class: ClassProgression, family: "DesertKeySmall", tier: 0},
	DesertKeySmall04:        {token: "DesertKeySmall04", class: ClassProgression, family: "DesertKeySmall", tier: 0},
	DesertKeySmall05:        {token: "DesertKeySmall05", class: ClassProgression, family: "DesertKeySmall", tier: 0},
	TurtleCompass:           {token: "TurtleCompass", class: ClassTrash, family: "TurtleCompass", tier: 0},
	TurtleKeyBig:            {token: "TurtleKeyBig", class: ClassProgression, family: "TurtleKeyBig", tier: 0},
	TurtleKeySmall01:        {token: "TurtleKeySmall01", class: ClassProgression, family: "TurtleKeySmall", tier: 0},
	TurtleKeySmall02:        {token: "TurtleKeySmall02", class: ClassProgression, family: "TurtleKeySmall", tier: 0},
	TurtleKeySmall03:        {token: "TurtleKeySmall03", class: ClassProgression, family: "TurtleKeySmall", tier: 0},
	LoruleCastleCompass:     {token: "LoruleCastleCompass", class: ClassTrash, family: "LoruleCastleCompass", tier: 0},
	LoruleCastleKeySmall01:  {token: "LoruleCastleKeySmall01", class: ClassProgression, family: "LoruleCastleKeySmall", tier: 0},
	LoruleCastleKeySmall02:  {token: "LoruleCastleKeySmall02", class: ClassProgression, family: "LoruleCastleKeySmall", tier: 0},
	LoruleCastleKeySmall03:  {token: "LoruleCastleKeySmall03", class: ClassProgression, family: "LoruleCastleKeySmall", tier: 0},
	LoruleCastleKeySmall04:  {token: "LoruleCastleKeySmall04", class: ClassProgression, family: "LoruleCastleKeySmall", tier: 0},
	LoruleCastleKeySmall05:  {token: "LoruleCastleKeySmall05", class: ClassProgression, family: "LoruleCastleKeySmall", tier: 0},
	PendantOfCourage:        {token: "PendantOfCourage", class: ClassEvent, family: "Pendant", tier: 0},
	PendantOfWisdom:         {token: "PendantOfWisdom", class: ClassEvent, family: "Pendant", tier: 0},
	PendantOfPower:          {token: "PendantOfPower", class: ClassEvent, family: "Pendant", tier: 0},
	SageGulley:              {token: "SageGulley", class: ClassEvent, family: "Sage", tier: 0},
	SageOren:                {token: "SageOren", class: ClassEvent, family: "Sage", tier: 0},
	SageSeres:               {token: "SageSeres", class: ClassEvent, family: "Sage", tier: 0},
	SageOsfala:              {token: "SageOsfala", class: ClassEvent, family: "Sage", tier: 0},
	SageRosso:               {token: "SageRosso", class: ClassEvent, family: "Sage", tier: 0},
	SageIrene:               {token: "SageIrene", class: ClassEvent, family: "Sage", tier: 0},
	SageImpa:                {token: "SageImpa", class: ClassEvent, family: "Sage", tier: 0},
	ScootFruit:              {token: "ScootFruit", class: ClassProgression, family: "ScootFruit", tier: 0},
	FoulFruit:               {token: "FoulFruit", class: ClassProgression, family: "FoulFruit", tier: 0},
	Shield:                  {token: "Shield", class: ClassProgression, family: "Shield", tier: 0},
	GoldBee:                 {token: "GoldBee", class: ClassTrash, family: "GoldBee", tier: 0},
	OpenSanctuaryDoors:      {token: "OpenSanctuaryDoors", class: ClassEvent, family: "OpenSanctuaryDoors", tier: 0},
	BigBombFlower:           {token: "BigBombFlower", class: ClassEvent, family: "BigBombFlower", tier: 0},
	StylishWomansHouseOpen:  {token: "StylishWomansHouseOpen", class: ClassEvent, family: "StylishWomansHouseOpen", tier: 0},
	SkullEyeRight:           {token: "SkullEyeRight", class: ClassEvent, family: "SkullEyeRight", tier: 0},
	SkullEyeLeft:            {token: "SkullEyeLeft", class: ClassEvent, family: "SkullEyeLeft", tier: 0},
	AccessPotionShop:        {token: "AccessPotionShop", class: ClassEvent, family: "AccessPotionShop", tier: 0},
	AccessMilkBar:           {token: "AccessMilkBar", class: ClassEvent, family: "AccessMilkBar", tier: 0},
	AccessHyruleBlacksmith:  {token: "AccessHyruleBlacksmith", class: ClassEvent, family: "AccessHyruleBlacksmith", tier: 0},
	AccessLoruleCastleField: {token: "AccessLoruleCastleField", class: ClassEvent, family: "AccessLoruleCastleField", tier: 0},
	Triforce:                {token: "Triforce", class: ClassEvent, family: "Triforce", tier: 0},
}

package ministry

import "github.com/coolbeans/lawid/pkg/era"

// M1 covers 1869-07-08 through 1943-10-31, the long pre-war cabinet
// system. The army ordinance series was published in two parallel
// streams (甲/乙), and the agriculture-and-commerce ministry had a
// temporary wartime series (臨), hence the qualified rules.
var (
	M1Cabinet                   = Body{M1, 1}
	M1ImperialHousehold         = Body{M1, 2}
	M1GreaterEastAsia           = Body{M1, 3}
	M1Interior                  = Body{M1, 4}
	M1Justice                   = Body{M1, 5}
	M1ForeignAffairs            = Body{M1, 6}
	M1Finance                   = Body{M1, 7}
	M1Education                 = Body{M1, 8}
	M1HealthWelfare             = Body{M1, 9}
	M1AgricultureCommerce       = Body{M1, 10}
	M1CommerceIndustry          = Body{M1, 11}
	M1Railway                   = Body{M1, 12}
	M1Communications            = Body{M1, 13}
	M1ArmyA                     = Body{M1, 14}
	M1Navy                      = Body{M1, 15}
	M1ArmyB                     = Body{M1, 16}
	M1AgricultureForestry       = Body{M1, 17}
	M1LandDevelopmentA          = Body{M1, 18}
	M1LandDevelopmentB          = Body{M1, 19}
	M1AgricultureCommerceTemp   = Body{M1, 20}
	M1JusticeHei                = Body{M1, 21}
)

var m1Table = &periodInfo{
	tag:   "M1",
	start: era.NewDate(1869, 7, 8),
	end:   era.NewDate(1943, 10, 31),
	rules: []nameRule{
		{M1Cabinet, "閣令", "閣", ""},
		{M1ImperialHousehold, "宮内省令", "宮内省", ""},
		{M1GreaterEastAsia, "大東亜省令", "大東亜省", ""},
		{M1Interior, "内務省令", "内務省", ""},
		{M1Justice, "司法省令", "司法省", ""},
		{M1ForeignAffairs, "外務省令", "外務省", ""},
		{M1Finance, "大蔵省令", "大蔵省", ""},
		{M1Education, "文部省令", "文部省", ""},
		{M1HealthWelfare, "厚生省令", "厚生省", ""},
		{M1AgricultureCommerce, "農商務省令", "農商務省", ""},
		{M1CommerceIndustry, "商工省令", "商工省", ""},
		{M1Railway, "鉄道省令", "鉄道省", ""},
		{M1Communications, "逓信省令", "逓信省", ""},
		{M1ArmyA, "陸軍省令（甲）", "陸軍省", "甲"},
		{M1Navy, "海軍省令", "海軍省", ""},
		{M1ArmyB, "陸軍省令（乙）", "陸軍省", "乙"},
		{M1AgricultureForestry, "農林省令", "農林省", ""},
		{M1LandDevelopmentA, "拓殖務省令", "拓殖務省", ""},
		{M1LandDevelopmentB, "拓務省令", "拓務省", ""},
		{M1AgricultureCommerceTemp, "農商務省令臨", "農商務省", "臨"},
		{M1JusticeHei, "司法省令（丙）", "司法省", "丙"},
	},
}

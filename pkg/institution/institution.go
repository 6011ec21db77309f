// Package institution models the standalone government bodies (courts,
// chambers, the audit board, several commissions) whose regulations
// carry an institution code in their law IDs. Unlike the ministry
// taxonomy, the table is flat and period-independent.
package institution

import "strings"

// Institution identifies one standalone body; the value is its fixed
// integer code from the naming convention. Codes run 1-19 with a few
// reserved gaps.
type Institution int

const (
	BoardOfAudit                   Institution = 1  // 会計検査院
	CoastGuard                     Institution = 2  // 海上保安庁
	ScienceCouncil                 Institution = 3  // 日本学術会議
	LandAdjustmentCommission       Institution = 4  // 土地調整委員会
	FinancialReconstruction        Institution = 5  // 金融再生委員会
	MetropolitanAreaDevelopment    Institution = 6  // 首都圏整備委員会
	LocalFinanceCommission         Institution = 7  // 地方財政委員会
	BarExaminationCommittee        Institution = 8  // 司法試験管理委員会
	AccountantExaminationCommittee Institution = 9  // 公認会計士管理委員会
	ForeignInvestmentCommission    Institution = 10 // 外資委員会
	CulturalPropertiesProtection   Institution = 11 // 文化財保護委員会
	UNESCONationalCommission       Institution = 12 // 日本ユネスコ国内委員会
	SupremeCourt                   Institution = 13 // 最高裁判所
	HouseOfRepresentatives         Institution = 14 // 衆議院
	HouseOfCouncillors             Institution = 15 // 参議院
	SeafarersLaborCommission       Institution = 16 // 船員中央労働委員会
	RadioRegulatoryCommission      Institution = 18 // 電波監理委員会
	CasinoManagementCommission     Institution = 19 // カジノ管理委員会
)

// entry pairs an institution with its display name and free-text
// containment rule. Order matters: FromName returns the first match.
var table = []struct {
	inst Institution
	name string
}{
	{BoardOfAudit, "会計検査院"},
	{CoastGuard, "海上保安庁"},
	{ScienceCouncil, "日本学術会議"},
	{LandAdjustmentCommission, "土地調整委員会"},
	{FinancialReconstruction, "金融再生委員会"},
	{MetropolitanAreaDevelopment, "首都圏整備委員会"},
	{LocalFinanceCommission, "地方財政委員会"},
	{BarExaminationCommittee, "司法試験管理委員会"},
	{AccountantExaminationCommittee, "公認会計士管理委員会"},
	{ForeignInvestmentCommission, "外資委員会"},
	{CulturalPropertiesProtection, "文化財保護委員会"},
	{UNESCONationalCommission, "日本ユネスコ国内委員会"},
	{SupremeCourt, "最高裁判所"},
	{HouseOfRepresentatives, "衆議院"},
	{HouseOfCouncillors, "参議院"},
	{SeafarersLaborCommission, "船員中央労働委員会"},
	{RadioRegulatoryCommission, "電波監理委員会"},
	{CasinoManagementCommission, "カジノ管理委員会"},
}

// Code returns the institution's integer code. Encoding always emits
// this value, including for institutions with a legacy decode alias.
func (i Institution) Code() int {
	return int(i)
}

// Name returns the institution's Japanese name.
func (i Institution) Name() string {
	for _, e := range table {
		if e.inst == i {
			return e.name
		}
	}
	return ""
}

// FromCode resolves an integer code. Code 17 appears in the historical
// ID corpus as an alias of the bar-examination committee (code 8), so
// it decodes to that member; re-encoding such an ID normalizes the
// alias away, which is the one documented exception to byte-identical
// round-trips.
func FromCode(n int) (Institution, bool) {
	if n == 17 {
		return BarExaminationCommittee, true
	}
	for _, e := range table {
		if int(e.inst) == n {
			return e.inst, true
		}
	}
	return 0, false
}

// FromName returns the first institution whose name is contained in the
// text. Well-formed regulation titles name at most one institution, so
// first-match is only-match in practice.
func FromName(text string) (Institution, bool) {
	for _, e := range table {
		if strings.Contains(text, e.name) {
			return e.inst, true
		}
	}
	return 0, false
}

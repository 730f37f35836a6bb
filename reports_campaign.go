package donors

// CampaignReport summarizes fundraising campaigns.
type CampaignReport struct {
	Currencies []CampaignTotals
	ByStatus   []Bucket // campaign counts
	ByType     []Bucket // campaign counts
	Raised     []CurrencyBreakdown
	Top        []CampaignLine
}

// CampaignTotals sums the campaigns targeting one currency.
type CampaignTotals struct {
	Currency   string
	Target     Money
	Raised     Money
	Efficiency Percent
	Campaigns  int
}

// CampaignLine holds the indicators of a single campaign.
type CampaignLine struct {
	ID         ID
	Title      string
	Status     string
	Target     Money
	Raised     Money
	Efficiency Percent
}

// NewCampaignReport computes the campaign analytics, listing the top n
// campaigns by efficiency (all when n <= 0).
func NewCampaignReport(ds *Dataset, n int) *CampaignReport {
	r := &CampaignReport{
		ByStatus: GroupBy(ds.Campaigns, ByStatus, nil),
		ByType:   GroupBy(ds.Campaigns, ByType, nil),
		Raised:   AggregateByCurrency(ds.Campaigns, KeyFunc[Campaign](ByStatus), campaignRaised),
	}
	for _, p := range Partition(ds.Campaigns, Campaign.CurrencyCode) {
		target, raised := M(0, p.Key), M(0, p.Key)
		for _, c := range p.Records {
			target = target.Add(M(campaignTarget(c), c.CurrencyCode()))
			raised = raised.Add(M(campaignRaised(c), c.CurrencyCode()))
		}
		r.Currencies = append(r.Currencies, CampaignTotals{
			Currency:   p.Key,
			Target:     target,
			Raised:     raised,
			Efficiency: Efficiency(raised.Decimal(), target.Decimal()),
			Campaigns:  len(p.Records),
		})
	}
	for _, c := range TopCampaigns(ds.Campaigns, n) {
		cur := c.CurrencyCode()
		r.Top = append(r.Top, CampaignLine{
			ID:         c.ID,
			Title:      c.Title,
			Status:     c.GroupValue(ByStatus),
			Target:     M(campaignTarget(c), cur),
			Raised:     M(campaignRaised(c), cur),
			Efficiency: Efficiency(campaignRaised(c), campaignTarget(c)),
		})
	}
	return r
}

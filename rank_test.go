package donors

import "testing"

func TestRankByCompletion(t *testing.T) {
	projects := []Project{
		{ID: "a", MilestonesCompleted: A(3), MilestonesTotal: A(5)},
		{ID: "b", MilestonesCompleted: A(0), MilestonesTotal: A(0)},
		{ID: "c", MilestonesCompleted: A(5), MilestonesTotal: A(5)},
	}
	ranked := RankByCompletion(projects)

	wantIDs := []ID{"c", "a", "b"}
	wantCompletion := []Percent{100, 60, 0}
	for i, p := range ranked {
		if p.ID != wantIDs[i] {
			t.Errorf("ranked[%d] = %q, want %q", i, p.ID, wantIDs[i])
		}
		if got := Completion(p); !got.Equal(wantCompletion[i]) {
			t.Errorf("Completion(ranked[%d]) = %v, want %v", i, got, wantCompletion[i])
		}
	}
	if projects[0].ID != "a" || projects[1].ID != "b" {
		t.Errorf("RankByCompletion modified its input: %v", projects)
	}
}

func TestRankByCompletionKeepsTies(t *testing.T) {
	projects := []Project{
		{ID: "first", MilestonesCompleted: A(1), MilestonesTotal: A(2)},
		{ID: "none"},
		{ID: "second", MilestonesCompleted: A(2), MilestonesTotal: A(4)},
	}
	ranked := RankByCompletion(projects)
	if ranked[0].ID != "first" || ranked[1].ID != "second" || ranked[2].ID != "none" {
		t.Errorf("RankByCompletion() = %v, want first, second, none", ranked)
	}
}

func TestTopCampaigns(t *testing.T) {
	campaigns := []Campaign{
		{ID: "1", TargetAmount: A(100), RaisedAmount: A(10)},
		{ID: "2", TargetAmount: A(100), RaisedAmount: A(90)},
		{ID: "3", TargetAmount: A(0), RaisedAmount: A(50)},
		{ID: "4", TargetAmount: A(10), RaisedAmount: A(20)},
	}
	top := TopCampaigns(campaigns, 2)
	if len(top) != 2 || top[0].ID != "4" || top[1].ID != "2" {
		t.Errorf("TopCampaigns(2) = %v, want 4 then 2", top)
	}
	if all := TopCampaigns(campaigns, 0); len(all) != 4 || all[3].ID != "3" {
		t.Errorf("TopCampaigns(0) = %v, want all 4 with the target-less last", all)
	}
}

func TestLargestDonations(t *testing.T) {
	donations := []Donation{{ID: "1", Amount: A(5)}, {ID: "2", Amount: A(500)}, {ID: "3", Amount: A(50)}}
	got := LargestDonations(donations, 2)
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Errorf("LargestDonations(2) = %v, want 2 then 3", got)
	}
}

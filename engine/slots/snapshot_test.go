package slots

import (
	"encoding/json"
	"reflect"
	"testing"

	tierx "github.com/staywise/hotel-dialogue/engine/tier"
)

func populatedRecord(t *testing.T) *Record {
	t.Helper()

	r := NewRecord()
	r.SetCity("Tokyo")
	r.SetBudgetPerNight("100-200")
	r.SetLocation("Shinjuku")
	r.AddTag("luxury")
	r.SetCheckIn("2026-03-10")
	r.SetCheckOut("2026-03-14")
	r.SetAdults(2)
	r.AddChild(5)
	r.AdjustRooms(1)
	r.AddFacility("pool")
	r.SetView("city")
	r.SetBrand("Hilton")
	r.SetOpenAfterYear(2020)
	r.SetConsentChildren(true)
	r.CityTier(tierx.NewClassifier())
	return r
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	r := populatedRecord(t)
	restored := FromSnapshot(r.Snapshot())

	if !reflect.DeepEqual(restored, r) {
		t.Fatalf("round trip mismatch:\n restored %+v\n original %+v", restored, r)
	}
	if got := restored.CityTier(nil); got.Tier != tierx.Large {
		t.Fatalf("restored tier = %q, want %q (cache not carried)", got.Tier, tierx.Large)
	}
}

func TestSnapshotSurvivesJSON(t *testing.T) {
	t.Parallel()

	r := populatedRecord(t)

	payload, err := json.Marshal(r.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := FromSnapshot(snap)
	if !reflect.DeepEqual(restored, r) {
		t.Fatalf("JSON round trip mismatch:\n restored %+v\n original %+v", restored, r)
	}
}

func TestSnapshotIsDetachedFromRecord(t *testing.T) {
	t.Parallel()

	r := NewRecord()
	r.SetCity("Tokyo")
	r.AddTag("luxury")
	snap := r.Snapshot()

	r.AddTag("trending")
	r.AddChild(4)

	if !reflect.DeepEqual(snap.Tags, []string{"luxury"}) {
		t.Fatalf("snapshot tags = %v, want [luxury]", snap.Tags)
	}
	if len(snap.Children) != 0 {
		t.Fatalf("snapshot children = %v, want empty", snap.Children)
	}
}

func TestFromSnapshotRestoresRoomsFloor(t *testing.T) {
	t.Parallel()

	r := FromSnapshot(Snapshot{City: "Tokyo"})
	if r.Rooms != 1 {
		t.Fatalf("Rooms = %d, want 1", r.Rooms)
	}
}

package catalog

import "testing"

func TestNormalizeKeepsValidChauffeur(t *testing.T) {
	for _, v := range []string{"yes", "no", "on_demand"} {
		f := Filters{Chauffeur: v}.Normalize()
		if f.Chauffeur != v {
			t.Errorf("Normalize dropped valid chauffeur %q", v)
		}
	}
}

func TestNormalizeBlanksJunkChauffeur(t *testing.T) {
	for _, v := range []string{"maybe", "YES", "1", "true"} {
		f := Filters{Chauffeur: v}.Normalize()
		if f.Chauffeur != "" {
			t.Errorf("Normalize kept junk chauffeur %q", v)
		}
	}
}

func TestNormalizeLeavesOtherFieldsAlone(t *testing.T) {
	min := 100.0
	f := Filters{
		Location:  "Casablanca",
		Category:  "suv",
		MinPrice:  &min,
		Chauffeur: "junk",
	}.Normalize()

	if f.Location != "Casablanca" || f.Category != "suv" || f.MinPrice == nil || *f.MinPrice != 100 {
		t.Fatalf("Normalize touched unrelated fields: %+v", f)
	}
}

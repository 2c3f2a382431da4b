package catalog

import "github.com/matzehuels/starchart/pkg/celestial"

// stickFigures lists each constellation's segments by star name.
var stickFigures = []struct {
	name     string
	segments [][2]string
}{
	{"Andromeda", [][2]string{{"Alpheratz", "Mirach"}}},
	{"Aquila", [][2]string{{"Tarazed", "Altair"}, {"Altair", "Alshain"}}},
	{"Auriga", [][2]string{
		{"Capella", "Menkalinan"}, {"Menkalinan", "Elnath"}, {"Elnath", "Hassaleh"}, {"Hassaleh", "Capella"},
	}},
	{"Boötes", [][2]string{{"Arcturus", "Izar"}}},
	{"Canis Major", [][2]string{
		{"Sirius", "Mirzam"}, {"Sirius", "Adhara"}, {"Adhara", "Wezen"}, {"Wezen", "Aludra"},
	}},
	{"Cassiopeia", [][2]string{{"Caph", "Schedar"}, {"Schedar", "Navi"}}},
	{"Corvus", [][2]string{
		{"Gienah", "Algorab"}, {"Algorab", "Kraz"}, {"Kraz", "Minkar"}, {"Minkar", "Gienah"},
	}},
	{"Crux", [][2]string{{"Acrux", "Gacrux"}}},
	{"Cygnus", [][2]string{{"Deneb", "Sadr"}, {"Sadr", "Albireo"}, {"Sadr", "Aljanah"}}},
	{"Draco", [][2]string{
		{"Rastaban", "Eltanin"}, {"Eltanin", "Grumium"}, {"Grumium", "Aldhibah"},
		{"Aldhibah", "Thuban"}, {"Thuban", "Giausar"},
	}},
	{"Gemini", [][2]string{
		{"Castor", "Pollux"}, {"Pollux", "Wasat"}, {"Wasat", "Alhena"},
		{"Castor", "Mebsuta"}, {"Mebsuta", "Tejat"}, {"Tejat", "Propus"},
	}},
	{"Leo", [][2]string{
		{"Regulus", "Algieba"}, {"Algieba", "Adhafera"}, {"Adhafera", "Rasalas"}, {"Algieba", "Zosma"},
		{"Zosma", "Denebola"}, {"Denebola", "Chertan"}, {"Chertan", "Regulus"},
	}},
	{"Orion", [][2]string{
		{"Betelgeuse", "Bellatrix"}, {"Bellatrix", "Mintaka"}, {"Betelgeuse", "Alnitak"},
		{"Mintaka", "Alnilam"}, {"Alnilam", "Alnitak"}, {"Alnitak", "Saiph"}, {"Mintaka", "Rigel"},
	}},
	{"Pegasus", [][2]string{{"Alpheratz", "Scheat"}, {"Scheat", "Markab"}, {"Markab", "Enif"}}},
	{"Scorpius", [][2]string{
		{"Acrab", "Dschubba"}, {"Dschubba", "Antares"}, {"Antares", "Larawag"},
		{"Larawag", "Sargas"}, {"Sargas", "Girtab"}, {"Girtab", "Shaula"},
	}},
	{"Taurus", [][2]string{{"Aldebaran", "Elnath"}}},
	{"Ursa Major", [][2]string{
		{"Alkaid", "Mizar"}, {"Mizar", "Alioth"}, {"Alioth", "Megrez"}, {"Megrez", "Dubhe"},
		{"Dubhe", "Merak"}, {"Merak", "Phecda"}, {"Phecda", "Megrez"},
	}},
	{"Ursa Minor", [][2]string{{"Polaris", "Yildun"}, {"Kochab", "Pherkad"}}},
	{"Virgo", [][2]string{
		{"Spica", "Heze"}, {"Heze", "Porrima"}, {"Porrima", "Auva"}, {"Auva", "Vindemiatrix"},
		{"Porrima", "Zaniah"}, {"Zaniah", "Zavijava"},
	}},
}

// figures resolves stickFigures against c's stars. Segments naming an
// unknown star are dropped.
func figures(c *Catalog) []Constellation {
	out := make([]Constellation, 0, len(stickFigures))
	for _, f := range stickFigures {
		con := Constellation{Name: f.name}
		for _, seg := range f.segments {
			a, okA := c.Star(seg[0])
			b, okB := c.Star(seg[1])
			if !okA || !okB {
				continue
			}
			con.Lines = append(con.Lines, [2]celestial.Coord{a.Coord(), b.Coord()})
		}
		if len(con.Lines) > 0 {
			out = append(out, con)
		}
	}
	return out
}

package catalog

// messier is the Messier catalog (M102 omitted as unidentified), J2000.
var messier = []DSO{
	{ID: "M1", Name: "Crab Nebula", Type: SupernovaRemnant, RA: 5.575547, Dec: 22.014472, Magnitude: 8.4},
	{ID: "M2", Type: GlobularCluster, RA: 21.557503, Dec: 0.823306, Magnitude: 6.5},
	{ID: "M3", Type: GlobularCluster, RA: 13.703119, Dec: 28.375444, Magnitude: 6.2},
	{ID: "M4", Type: GlobularCluster, RA: 16.393167, Dec: -25.474472, Magnitude: 5.6},
	{ID: "M5", Type: GlobularCluster, RA: 15.309375, Dec: 2.082694, Magnitude: 5.6},
	{ID: "M6", Name: "Butterfly Cluster", Type: OpenCluster, RA: 17.672431, Dec: -31.745833, Magnitude: 4.2},
	{ID: "M7", Name: "Ptolemy Cluster", Type: OpenCluster, RA: 17.89755, Dec: -33.207167, Magnitude: 3.3},
	{ID: "M8", Name: "Lagoon Nebula", Type: ClusterNebula, RA: 18.061464, Dec: -23.619833, Magnitude: 6.0},
	{ID: "M9", Type: GlobularCluster, RA: 17.319939, Dec: -17.48375, Magnitude: 7.7},
	{ID: "M10", Type: GlobularCluster, RA: 16.952497, Dec: -3.900667, Magnitude: 6.6},
	{ID: "M11", Name: "Wild Duck Cluster", Type: OpenCluster, RA: 18.851664, Dec: -5.729972, Magnitude: 6.3},
	{ID: "M12", Type: GlobularCluster, RA: 16.787367, Dec: -0.052167, Magnitude: 6.7},
	{ID: "M13", Name: "Hercules Cluster", Type: GlobularCluster, RA: 16.694897, Dec: 36.461306, Magnitude: 5.8},
	{ID: "M14", Type: GlobularCluster, RA: 17.626711, Dec: -2.754083, Magnitude: 7.6},
	{ID: "M15", Type: GlobularCluster, RA: 21.49955, Dec: 12.166833, Magnitude: 6.2},
	{ID: "M16", Name: "Eagle Nebula", Type: ClusterNebula, RA: 18.313381, Dec: -12.192778, Magnitude: 6.0},
	{ID: "M17", Name: "Omega Nebula", Type: ClusterNebula, RA: 18.346419, Dec: -15.828472, Magnitude: 6.0},
	{ID: "M18", Type: OpenCluster, RA: 18.332914, Dec: -16.898028, Magnitude: 7.5},
	{ID: "M19", Type: GlobularCluster, RA: 17.0438, Dec: -25.732056, Magnitude: 6.8},
	{ID: "M20", Name: "Trifid Nebula", Type: ClusterNebula, RA: 18.045031, Dec: -21.028111, Magnitude: 6.3},
	{ID: "M21", Type: OpenCluster, RA: 18.070403, Dec: -21.509944, Magnitude: 6.5},
	{ID: "M22", Type: GlobularCluster, RA: 18.606722, Dec: -22.096583, Magnitude: 5.1},
	{ID: "M23", Type: OpenCluster, RA: 17.951325, Dec: -17.014667, Magnitude: 6.9},
	{ID: "M24", Name: "Sagittarius Star Cloud", Type: Association, RA: 18.282256, Dec: -17.485444, Magnitude: 4.6},
	{ID: "M25", Type: OpenCluster, RA: 18.529658, Dec: -18.885056, Magnitude: 4.6},
	{ID: "M26", Type: OpenCluster, RA: 18.755183, Dec: -8.616389, Magnitude: 8.0},
	{ID: "M27", Name: "Dumbbell Nebula", Type: PlanetaryNebula, RA: 19.993439, Dec: 22.721028, Magnitude: 7.4},
	{ID: "M28", Type: GlobularCluster, RA: 18.409136, Dec: -23.130167, Magnitude: 6.8},
	{ID: "M29", Type: OpenCluster, RA: 20.399381, Dec: 38.507667, Magnitude: 7.1},
	{ID: "M30", Type: GlobularCluster, RA: 21.672783, Dec: -22.820917, Magnitude: 7.2},
	{ID: "M31", Name: "Andromeda Galaxy", Type: Galaxy, RA: 0.712319, Dec: 41.269056, Magnitude: 3.4},
	{ID: "M32", Type: Galaxy, RA: 0.711619, Dec: 40.865278, Magnitude: 8.1},
	{ID: "M33", Name: "Triangulum Galaxy", Type: Galaxy, RA: 1.564136, Dec: 30.660222, Magnitude: 5.7},
	{ID: "M34", Type: OpenCluster, RA: 2.702056, Dec: 42.746139, Magnitude: 5.5},
	{ID: "M35", Type: OpenCluster, RA: 6.151406, Dec: 24.338639, Magnitude: 5.3},
	{ID: "M36", Type: OpenCluster, RA: 5.604928, Dec: 34.14075, Magnitude: 6.3},
	{ID: "M37", Type: OpenCluster, RA: 5.871764, Dec: 32.553, Magnitude: 6.2},
	{ID: "M38", Type: OpenCluster, RA: 5.478469, Dec: 35.854917, Magnitude: 7.4},
	{ID: "M39", Type: OpenCluster, RA: 21.530089, Dec: 48.438167, Magnitude: 4.6},
	{ID: "M40", Name: "Winnecke 4", Type: DoubleStar, RA: 12.371139, Dec: 58.084444, Magnitude: 8.4},
	{ID: "M41", Type: OpenCluster, RA: 6.76665, Dec: -19.245778, Magnitude: 4.5},
	{ID: "M42", Name: "Orion Nebula", Type: ClusterNebula, RA: 5.587911, Dec: -4.610333, Magnitude: 4.0},
	{ID: "M43", Name: "De Mairan's Nebula", Type: EmissionNebula, RA: 5.59205, Dec: -4.732528, Magnitude: 9.0},
	{ID: "M44", Name: "Beehive Cluster", Type: OpenCluster, RA: 8.672833, Dec: 19.672056, Magnitude: 3.7},
	{ID: "M45", Name: "Pleiades", Type: OpenCluster, RA: 3.791278, Dec: 24.105278, Magnitude: 1.6},
	{ID: "M46", Type: OpenCluster, RA: 7.696339, Dec: -13.19, Magnitude: 6.1},
	{ID: "M47", Type: OpenCluster, RA: 7.609728, Dec: -13.517389, Magnitude: 4.4},
	{ID: "M48", Type: OpenCluster, RA: 8.228661, Dec: -4.249556, Magnitude: 5.8},
	{ID: "M49", Type: Galaxy, RA: 12.496322, Dec: 8.000472, Magnitude: 8.4},
	{ID: "M50", Type: OpenCluster, RA: 7.044575, Dec: -7.635972, Magnitude: 5.9},
	{ID: "M51", Name: "Whirlpool Galaxy", Type: Galaxy, RA: 13.497975, Dec: 47.195167, Magnitude: 8.4},
	{ID: "M52", Type: OpenCluster, RA: 23.413444, Dec: 61.593167, Magnitude: 7.3},
	{ID: "M53", Type: GlobularCluster, RA: 13.215342, Dec: 18.169111, Magnitude: 7.6},
	{ID: "M54", Type: GlobularCluster, RA: 18.917575, Dec: -29.5215, Magnitude: 7.6},
	{ID: "M55", Type: GlobularCluster, RA: 19.6665, Dec: -29.037917, Magnitude: 6.3},
	{ID: "M56", Type: GlobularCluster, RA: 19.276531, Dec: 30.1845, Magnitude: 8.3},
	{ID: "M57", Name: "Ring Nebula", Type: PlanetaryNebula, RA: 18.893058, Dec: 33.028583, Magnitude: 8.8},
	{ID: "M58", Type: Galaxy, RA: 12.628756, Dec: 11.818194, Magnitude: 9.7},
	{ID: "M59", Type: Galaxy, RA: 12.700622, Dec: 11.647028, Magnitude: 9.6},
	{ID: "M60", Type: Galaxy, RA: 12.727772, Dec: 11.552694, Magnitude: 8.8},
	{ID: "M61", Type: Galaxy, RA: 12.36525, Dec: 4.473639, Magnitude: 9.7},
	{ID: "M62", Type: GlobularCluster, RA: 17.020167, Dec: -29.887639, Magnitude: 6.5},
	{ID: "M63", Name: "Sunflower Galaxy", Type: Galaxy, RA: 13.263703, Dec: 42.029278, Magnitude: 8.6},
	{ID: "M64", Name: "Black Eye Galaxy", Type: Galaxy, RA: 12.945456, Dec: 21.682972, Magnitude: 8.5},
	{ID: "M65", Type: Galaxy, RA: 11.315533, Dec: 13.092361, Magnitude: 9.3},
	{ID: "M66", Type: Galaxy, RA: 11.337489, Dec: 12.991528, Magnitude: 8.9},
	{ID: "M67", Type: OpenCluster, RA: 8.855592, Dec: 11.811944, Magnitude: 6.1},
	{ID: "M68", Type: GlobularCluster, RA: 12.657781, Dec: -25.256972, Magnitude: 7.8},
	{ID: "M69", Type: GlobularCluster, RA: 18.523119, Dec: -31.652028, Magnitude: 7.6},
	{ID: "M70", Type: GlobularCluster, RA: 18.720178, Dec: -31.708111, Magnitude: 7.9},
	{ID: "M71", Type: GlobularCluster, RA: 19.896142, Dec: 18.778389, Magnitude: 8.2},
	{ID: "M72", Type: GlobularCluster, RA: 20.891086, Dec: -11.462944, Magnitude: 9.3},
	{ID: "M73", Type: Association, RA: 20.982214, Dec: -11.3645, Magnitude: 9.0},
	{ID: "M74", Type: Galaxy, RA: 1.611597, Dec: 15.783667, Magnitude: 9.4},
	{ID: "M75", Type: GlobularCluster, RA: 20.101344, Dec: -20.077778, Magnitude: 8.5},
	{ID: "M76", Name: "Little Dumbbell Nebula", Type: PlanetaryNebula, RA: 1.705469, Dec: 51.575472, Magnitude: 10.1},
	{ID: "M77", Type: Galaxy, RA: 2.711308, Dec: 0.013278, Magnitude: 8.9},
	{ID: "M78", Type: ReflectionNebula, RA: 5.779394, Dec: 0.079306, Magnitude: 8.3},
	{ID: "M79", Type: GlobularCluster, RA: 5.402942, Dec: -23.475778, Magnitude: 7.7},
	{ID: "M80", Type: GlobularCluster, RA: 16.284031, Dec: -21.024889, Magnitude: 7.3},
	{ID: "M81", Name: "Bode's Galaxy", Type: Galaxy, RA: 9.925881, Dec: 69.065306, Magnitude: 6.9},
	{ID: "M82", Name: "Cigar Galaxy", Type: Galaxy, RA: 9.931314, Dec: 69.679389, Magnitude: 8.4},
	{ID: "M83", Name: "Southern Pinwheel Galaxy", Type: Galaxy, RA: 13.616931, Dec: -28.134583, Magnitude: 7.5},
	{ID: "M84", Type: Galaxy, RA: 12.417706, Dec: 12.886972, Magnitude: 9.1},
	{ID: "M85", Type: Galaxy, RA: 12.423364, Dec: 18.1915, Magnitude: 9.1},
	{ID: "M86", Type: Galaxy, RA: 12.436594, Dec: 12.946222, Magnitude: 8.9},
	{ID: "M87", Name: "Virgo A", Type: Galaxy, RA: 12.513728, Dec: 12.391111, Magnitude: 8.6},
	{ID: "M88", Type: Galaxy, RA: 12.5331, Dec: 14.420389, Magnitude: 9.6},
	{ID: "M89", Type: Galaxy, RA: 12.594392, Dec: 12.556333, Magnitude: 9.8},
	{ID: "M90", Type: Galaxy, RA: 12.613831, Dec: 13.162944, Magnitude: 9.5},
	{ID: "M91", Type: Galaxy, RA: 12.590681, Dec: 14.496333, Magnitude: 10.2},
	{ID: "M92", Type: GlobularCluster, RA: 17.285353, Dec: 43.136528, Magnitude: 6.4},
	{ID: "M93", Type: OpenCluster, RA: 7.741453, Dec: -22.146917, Magnitude: 6.0},
	{ID: "M94", Type: Galaxy, RA: 12.848072, Dec: 41.120444, Magnitude: 8.2},
	{ID: "M95", Type: Galaxy, RA: 10.732694, Dec: 11.703806, Magnitude: 9.7},
	{ID: "M96", Type: Galaxy, RA: 10.779372, Dec: 11.819944, Magnitude: 9.2},
	{ID: "M97", Name: "Owl Nebula", Type: PlanetaryNebula, RA: 11.246586, Dec: 55.019028, Magnitude: 9.9},
	{ID: "M98", Type: Galaxy, RA: 12.230081, Dec: 14.900333, Magnitude: 10.1},
	{ID: "M99", Type: Galaxy, RA: 12.313778, Dec: 14.4165, Magnitude: 9.9},
	{ID: "M100", Type: Galaxy, RA: 12.381897, Dec: 15.821806, Magnitude: 9.3},
	{ID: "M101", Name: "Pinwheel Galaxy", Type: Galaxy, RA: 14.053483, Dec: 54.348944, Magnitude: 7.9},
	{ID: "M103", Type: OpenCluster, RA: 1.556058, Dec: 60.658, Magnitude: 7.4},
	{ID: "M104", Name: "Sombrero Galaxy", Type: Galaxy, RA: 12.666508, Dec: -10.376944, Magnitude: 8.0},
	{ID: "M105", Type: Galaxy, RA: 10.797108, Dec: 12.581611, Magnitude: 9.3},
	{ID: "M106", Type: Galaxy, RA: 12.315972, Dec: 47.303972, Magnitude: 8.4},
	{ID: "M107", Type: GlobularCluster, RA: 16.5422, Dec: -12.946361, Magnitude: 7.9},
	{ID: "M108", Type: Galaxy, RA: 11.191936, Dec: 55.674111, Magnitude: 10.0},
	{ID: "M109", Type: Galaxy, RA: 11.959994, Dec: 53.374528, Magnitude: 9.8},
	{ID: "M110", Type: Galaxy, RA: 0.6728, Dec: 41.685306, Magnitude: 8.5},
}

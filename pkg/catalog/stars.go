package catalog

// brightStars are named stars to roughly magnitude 4.7, J2000.
var brightStars = []Star{
	{ID: "sirius", Name: "Sirius", RA: 6.75247, Dec: -16.716, Magnitude: -1.46},
	{ID: "canopus", Name: "Canopus", RA: 6.3992, Dec: -52.696, Magnitude: -0.74},
	{ID: "arcturus", Name: "Arcturus", RA: 14.261, Dec: 19.182, Magnitude: -0.05},
	{ID: "vega", Name: "Vega", RA: 18.61567, Dec: 38.784, Magnitude: 0.03},
	{ID: "capella", Name: "Capella", RA: 5.27813, Dec: 45.998, Magnitude: 0.08},
	{ID: "rigel", Name: "Rigel", RA: 5.24227, Dec: -8.202, Magnitude: 0.13},
	{ID: "procyon", Name: "Procyon", RA: 7.65507, Dec: 5.225, Magnitude: 0.34},
	{ID: "achernar", Name: "Achernar", RA: 1.6286, Dec: -57.237, Magnitude: 0.46},
	{ID: "betelgeuse", Name: "Betelgeuse", RA: 5.91953, Dec: 7.407, Magnitude: 0.5},
	{ID: "hadar", Name: "Hadar", RA: 14.06373, Dec: -60.373, Magnitude: 0.61},
	{ID: "altair", Name: "Altair", RA: 19.8464, Dec: 8.868, Magnitude: 0.76},
	{ID: "acrux", Name: "Acrux", RA: 12.44333, Dec: -63.099, Magnitude: 0.76},
	{ID: "aldebaran", Name: "Aldebaran", RA: 4.59867, Dec: 16.509, Magnitude: 0.85},
	{ID: "antares", Name: "Antares", RA: 16.49013, Dec: -26.432, Magnitude: 0.96},
	{ID: "spica", Name: "Spica", RA: 13.41987, Dec: -11.161, Magnitude: 0.97},
	{ID: "pollux", Name: "Pollux", RA: 7.75527, Dec: 28.026, Magnitude: 1.14},
	{ID: "fomalhaut", Name: "Fomalhaut", RA: 22.96087, Dec: -29.622, Magnitude: 1.16},
	{ID: "deneb", Name: "Deneb", RA: 20.69053, Dec: 45.28, Magnitude: 1.25},
	{ID: "mimosa", Name: "Mimosa", RA: 12.79533, Dec: -59.689, Magnitude: 1.25},
	{ID: "regulus", Name: "Regulus", RA: 10.13953, Dec: 11.967, Magnitude: 1.35},
	{ID: "adhara", Name: "Adhara", RA: 6.97707, Dec: -28.972, Magnitude: 1.5},
	{ID: "castor", Name: "Castor", RA: 7.57667, Dec: 31.889, Magnitude: 1.58},
	{ID: "gacrux", Name: "Gacrux", RA: 12.5194, Dec: -57.113, Magnitude: 1.63},
	{ID: "shaula", Name: "Shaula", RA: 17.56013, Dec: -37.104, Magnitude: 1.63},
	{ID: "bellatrix", Name: "Bellatrix", RA: 5.41887, Dec: 6.35, Magnitude: 1.64},
	{ID: "elnath", Name: "Elnath", RA: 5.4382, Dec: 28.608, Magnitude: 1.65},
	{ID: "miaplacidus", Name: "Miaplacidus", RA: 9.22, Dec: -69.717, Magnitude: 1.68},
	{ID: "alnilam", Name: "Alnilam", RA: 5.60353, Dec: -1.202, Magnitude: 1.69},
	{ID: "alnair", Name: "Alnair", RA: 22.1372, Dec: -46.961, Magnitude: 1.74},
	{ID: "alnitak", Name: "Alnitak", RA: 5.67933, Dec: -1.943, Magnitude: 1.77},
	{ID: "alioth", Name: "Alioth", RA: 12.90047, Dec: 55.96, Magnitude: 1.77},
	{ID: "dubhe", Name: "Dubhe", RA: 11.06213, Dec: 61.751, Magnitude: 1.79},
	{ID: "mirfak", Name: "Mirfak", RA: 3.4054, Dec: 49.861, Magnitude: 1.79},
	{ID: "wezen", Name: "Wezen", RA: 7.13987, Dec: -26.393, Magnitude: 1.84},
	{ID: "sargas", Name: "Sargas", RA: 17.622, Dec: -42.998, Magnitude: 1.87},
	{ID: "kaus_australis", Name: "Kaus Australis", RA: 18.40287, Dec: -34.384, Magnitude: 1.85},
	{ID: "avior", Name: "Avior", RA: 8.37527, Dec: -59.509, Magnitude: 1.86},
	{ID: "alkaid", Name: "Alkaid", RA: 13.79233, Dec: 49.313, Magnitude: 1.86},
	{ID: "menkalinan", Name: "Menkalinan", RA: 5.99213, Dec: 44.948, Magnitude: 1.9},
	{ID: "atria", Name: "Atria", RA: 16.81107, Dec: -69.028, Magnitude: 1.92},
	{ID: "alhena", Name: "Alhena", RA: 6.62853, Dec: 16.399, Magnitude: 1.93},
	{ID: "peacock", Name: "Peacock", RA: 20.42747, Dec: -56.735, Magnitude: 1.94},
	{ID: "alsephina", Name: "Alsephina", RA: 8.74507, Dec: -54.709, Magnitude: 1.96},
	{ID: "mirzam", Name: "Mirzam", RA: 6.37833, Dec: -17.956, Magnitude: 1.98},
	{ID: "polaris", Name: "Polaris", RA: 2.53027, Dec: 89.264, Magnitude: 2.02},
	{ID: "alphard", Name: "Alphard", RA: 9.4598, Dec: -8.659, Magnitude: 2.0},
	{ID: "hamal", Name: "Hamal", RA: 2.11953, Dec: 23.463, Magnitude: 2.0},
	{ID: "algieba", Name: "Algieba", RA: 9.7642, Dec: 19.842, Magnitude: 2.08},
	{ID: "diphda", Name: "Diphda", RA: 0.72647, Dec: -17.987, Magnitude: 2.02},
	{ID: "nunki", Name: "Nunki", RA: 18.92107, Dec: -26.297, Magnitude: 2.02},
	{ID: "mizar", Name: "Mizar", RA: 13.39873, Dec: 54.925, Magnitude: 2.04},
	{ID: "alpheratz", Name: "Alpheratz", RA: 0.1398, Dec: 29.091, Magnitude: 2.06},
	{ID: "saiph", Name: "Saiph", RA: 5.79593, Dec: -9.67, Magnitude: 2.09},
	{ID: "mirach", Name: "Mirach", RA: 1.1622, Dec: 35.621, Magnitude: 2.05},
	{ID: "kochab", Name: "Kochab", RA: 14.84507, Dec: 74.156, Magnitude: 2.08},
	{ID: "rasalhague", Name: "Rasalhague", RA: 17.58227, Dec: 12.56, Magnitude: 2.08},
	{ID: "algol", Name: "Algol", RA: 3.13613, Dec: 40.957, Magnitude: 2.12},
	{ID: "denebola", Name: "Denebola", RA: 11.81767, Dec: 14.572, Magnitude: 2.13},
	{ID: "muhlifain", Name: "Muhlifain", RA: 12.69193, Dec: -48.96, Magnitude: 2.17},
	{ID: "naos", Name: "Naos", RA: 8.05973, Dec: -40.003, Magnitude: 2.25},
	{ID: "aspidiske", Name: "Aspidiske", RA: 9.28487, Dec: -59.275, Magnitude: 2.25},
	{ID: "suhail", Name: "Suhail", RA: 9.13327, Dec: -43.433, Magnitude: 2.21},
	{ID: "alphecca", Name: "Alphecca", RA: 15.57813, Dec: 26.715, Magnitude: 2.23},
	{ID: "mintaka", Name: "Mintaka", RA: 5.53347, Dec: -0.299, Magnitude: 2.23},
	{ID: "sadr", Name: "Sadr", RA: 20.37047, Dec: 40.257, Magnitude: 2.23},
	{ID: "eltanin", Name: "Eltanin", RA: 17.94347, Dec: 51.489, Magnitude: 2.23},
	{ID: "schedar", Name: "Schedar", RA: 0.67513, Dec: 56.537, Magnitude: 2.23},
	{ID: "caph", Name: "Caph", RA: 0.153, Dec: 59.15, Magnitude: 2.27},
	{ID: "dschubba", Name: "Dschubba", RA: 16.00553, Dec: -22.622, Magnitude: 2.32},
	{ID: "larawag", Name: "Larawag", RA: 16.977, Dec: -34.293, Magnitude: 2.29},
	{ID: "merak", Name: "Merak", RA: 11.03067, Dec: 56.382, Magnitude: 2.37},
	{ID: "izar", Name: "Izar", RA: 14.7498, Dec: 27.074, Magnitude: 2.37},
	{ID: "enif", Name: "Enif", RA: 21.7364, Dec: 9.875, Magnitude: 2.39},
	{ID: "ankaa", Name: "Ankaa", RA: 0.43807, Dec: -42.306, Magnitude: 2.38},
	{ID: "phecda", Name: "Phecda", RA: 11.8972, Dec: 53.695, Magnitude: 2.44},
	{ID: "sabik", Name: "Sabik", RA: 17.173, Dec: -15.725, Magnitude: 2.43},
	{ID: "scheat", Name: "Scheat", RA: 23.06293, Dec: 28.083, Magnitude: 2.42},
	{ID: "alderamin", Name: "Alderamin", RA: 21.30967, Dec: 62.586, Magnitude: 2.51},
	{ID: "aludra", Name: "Aludra", RA: 7.4016, Dec: -29.303, Magnitude: 2.45},
	{ID: "markeb", Name: "Markeb", RA: 9.36853, Dec: -55.011, Magnitude: 2.47},
	{ID: "girtab", Name: "Girtab", RA: 17.70813, Dec: -39.03, Magnitude: 2.41},
	{ID: "navi", Name: "Navi", RA: 0.94513, Dec: 60.717, Magnitude: 2.47},
	{ID: "markab", Name: "Markab", RA: 23.07933, Dec: 15.205, Magnitude: 2.49},
	{ID: "aljanah", Name: "Aljanah", RA: 20.7702, Dec: 33.97, Magnitude: 2.48},
	{ID: "acrab", Name: "Acrab", RA: 16.0906, Dec: -19.805, Magnitude: 2.62},
	{ID: "aldhanab", Name: "Aldhanab", RA: 21.33107, Dec: -16.127, Magnitude: 3.0},
	{ID: "gienah", Name: "Gienah", RA: 12.26347, Dec: -17.542, Magnitude: 2.59},
	{ID: "zubeneschamali", Name: "Zubeneschamali", RA: 15.28347, Dec: -9.383, Magnitude: 2.61},
	{ID: "unukalhai", Name: "Unukalhai", RA: 15.7378, Dec: 6.426, Magnitude: 2.65},
	{ID: "sheratan", Name: "Sheratan", RA: 1.91067, Dec: 20.808, Magnitude: 2.64},
	{ID: "phact", Name: "Phact", RA: 5.6608, Dec: -34.074, Magnitude: 2.64},
	{ID: "menkent", Name: "Menkent", RA: 14.1114, Dec: -36.37, Magnitude: 2.06},
	{ID: "zosma", Name: "Zosma", RA: 11.23513, Dec: 20.524, Magnitude: 2.56},
	{ID: "arneb", Name: "Arneb", RA: 5.54553, Dec: -17.822, Magnitude: 2.58},
	{ID: "gomeisa", Name: "Gomeisa", RA: 7.45253, Dec: 8.289, Magnitude: 2.9},
	{ID: "thuban", Name: "Thuban", RA: 14.07313, Dec: 64.376, Magnitude: 3.65},
	{ID: "rastaban", Name: "Rastaban", RA: 17.5072, Dec: 52.301, Magnitude: 2.79},
	{ID: "cor_caroli", Name: "Cor Caroli", RA: 12.9338, Dec: 38.318, Magnitude: 2.81},
	{ID: "vindemiatrix", Name: "Vindemiatrix", RA: 13.03627, Dec: 10.959, Magnitude: 2.83},
	{ID: "algorab", Name: "Algorab", RA: 12.49773, Dec: -16.515, Magnitude: 2.95},
	{ID: "zubenelgenubi", Name: "Zubenelgenubi", RA: 14.848, Dec: -16.042, Magnitude: 2.75},
	{ID: "porrima", Name: "Porrima", RA: 12.69433, Dec: -1.449, Magnitude: 2.74},
	{ID: "albireo", Name: "Albireo", RA: 19.512, Dec: 27.96, Magnitude: 3.18},
	{ID: "sadalmelik", Name: "Sadalmelik", RA: 22.0964, Dec: -0.32, Magnitude: 2.96},
	{ID: "sadalsuud", Name: "Sadalsuud", RA: 21.526, Dec: -5.571, Magnitude: 2.91},
	{ID: "yed_prior", Name: "Yed Prior", RA: 16.23907, Dec: -3.694, Magnitude: 2.75},
	{ID: "alcyone", Name: "Alcyone", RA: 3.7914, Dec: 24.105, Magnitude: 2.87},
	{ID: "tarazed", Name: "Tarazed", RA: 19.771, Dec: 10.613, Magnitude: 2.72},
	{ID: "alshain", Name: "Alshain", RA: 19.92187, Dec: 6.407, Magnitude: 3.71},
	{ID: "nihal", Name: "Nihal", RA: 5.47073, Dec: -20.759, Magnitude: 2.84},
	{ID: "wazn", Name: "Wazn", RA: 6.0266, Dec: -35.768, Magnitude: 3.85},
	{ID: "muscida", Name: "Muscida", RA: 8.5044, Dec: 60.718, Magnitude: 3.35},
	{ID: "talitha", Name: "Talitha", RA: 8.9868, Dec: 48.042, Magnitude: 3.14},
	{ID: "tania_australis", Name: "Tania Australis", RA: 10.37213, Dec: 41.499, Magnitude: 3.05},
	{ID: "alula_australis", Name: "Alula Australis", RA: 11.303, Dec: 31.529, Magnitude: 3.78},
	{ID: "megrez", Name: "Megrez", RA: 12.25713, Dec: 57.033, Magnitude: 3.31},
	{ID: "alcor", Name: "Alcor", RA: 13.4204, Dec: 54.988, Magnitude: 3.99},
	{ID: "syrma", Name: "Syrma", RA: 14.26693, Dec: -6.001, Magnitude: 4.08},
	{ID: "khambalia", Name: "Khambalia", RA: 14.5918, Dec: -13.371, Magnitude: 4.66},
	{ID: "kraz", Name: "Kraz", RA: 12.57313, Dec: -23.397, Magnitude: 2.65},
	{ID: "alkes", Name: "Alkes", RA: 10.99627, Dec: -18.299, Magnitude: 4.08},
	{ID: "minkar", Name: "Minkar", RA: 12.16873, Dec: -22.62, Magnitude: 3.02},
	{ID: "sceptrum", Name: "Sceptrum", RA: 4.19773, Dec: -8.898, Magnitude: 4.45},
	{ID: "cursa", Name: "Cursa", RA: 5.13087, Dec: -5.086, Magnitude: 2.79},
	{ID: "hassaleh", Name: "Hassaleh", RA: 5.0328, Dec: 33.166, Magnitude: 2.69},
	{ID: "hoedus_i", Name: "Hoedus I", RA: 5.04133, Dec: 41.234, Magnitude: 3.04},
	{ID: "hoedus_ii", Name: "Hoedus II", RA: 5.01653, Dec: 41.076, Magnitude: 3.17},
	{ID: "saclateni", Name: "Saclateni", RA: 5.29347, Dec: 40.01, Magnitude: 3.69},
	{ID: "furud", Name: "Furud", RA: 6.33853, Dec: -30.063, Magnitude: 3.96},
	{ID: "muliphein", Name: "Muliphein", RA: 7.06267, Dec: -15.633, Magnitude: 4.11},
	{ID: "tejat", Name: "Tejat", RA: 6.38267, Dec: 22.513, Magnitude: 2.88},
	{ID: "mebsuta", Name: "Mebsuta", RA: 6.7322, Dec: 25.131, Magnitude: 3.06},
	{ID: "propus", Name: "Propus", RA: 6.24793, Dec: 22.506, Magnitude: 3.28},
	{ID: "wasat", Name: "Wasat", RA: 7.3354, Dec: 21.982, Magnitude: 3.53},
	{ID: "kappa_gem", Name: "Kappa Gem", RA: 7.7408, Dec: 24.398, Magnitude: 3.57},
	{ID: "asellus_australis", Name: "Asellus Australis", RA: 8.74473, Dec: 18.154, Magnitude: 3.94},
	{ID: "asellus_borealis", Name: "Asellus Borealis", RA: 8.7214, Dec: 21.469, Magnitude: 4.66},
	{ID: "acubens", Name: "Acubens", RA: 8.9748, Dec: 11.858, Magnitude: 4.25},
	{ID: "alterf", Name: "Alterf", RA: 9.31407, Dec: 22.968, Magnitude: 4.31},
	{ID: "rasalas", Name: "Rasalas", RA: 9.7642, Dec: 26.007, Magnitude: 3.88},
	{ID: "adhafera", Name: "Adhafera", RA: 10.2782, Dec: 23.417, Magnitude: 3.43},
	{ID: "subra", Name: "Subra", RA: 9.8794, Dec: 9.893, Magnitude: 3.52},
	{ID: "chertan", Name: "Chertan", RA: 11.23733, Dec: 15.43, Magnitude: 3.33},
	{ID: "zavijava", Name: "Zavijava", RA: 11.84493, Dec: 1.765, Magnitude: 3.61},
	{ID: "tyl", Name: "Tyl", RA: 19.22927, Dec: 67.661, Magnitude: 4.01},
	{ID: "edasich", Name: "Edasich", RA: 15.41547, Dec: 58.966, Magnitude: 3.29},
	{ID: "giausar", Name: "Giausar", RA: 11.72947, Dec: 69.331, Magnitude: 3.85},
	{ID: "grumium", Name: "Grumium", RA: 17.89213, Dec: 56.873, Magnitude: 3.75},
	{ID: "alsafi", Name: "Alsafi", RA: 18.83467, Dec: 52.301, Magnitude: 4.67},
	{ID: "alrakis", Name: "Alrakis", RA: 16.39987, Dec: 61.514, Magnitude: 4.67},
	{ID: "dziban", Name: "Dziban", RA: 18.0108, Dec: 72.149, Magnitude: 4.54},
	{ID: "pherkad", Name: "Pherkad", RA: 15.34547, Dec: 71.834, Magnitude: 3.0},
	{ID: "yildun", Name: "Yildun", RA: 17.53693, Dec: 86.586, Magnitude: 4.36},
	{ID: "epsilon_dra", Name: "Epsilon Dra", RA: 19.80287, Dec: 70.268, Magnitude: 3.83},
	{ID: "chi_dra", Name: "Chi Dra", RA: 18.33107, Dec: 72.733, Magnitude: 3.57},
	{ID: "gianfar", Name: "Gianfar", RA: 18.9382, Dec: 75.388, Magnitude: 4.13},
	{ID: "aldhibah", Name: "Aldhibah", RA: 17.08953, Dec: 65.715, Magnitude: 3.17},
	{ID: "nodus_secundus", Name: "Nodus Secundus", RA: 16.46653, Dec: 61.514, Magnitude: 3.07},
	{ID: "tania_borealis", Name: "Tania Borealis", RA: 10.28493, Dec: 42.914, Magnitude: 3.45},
	{ID: "alula_borealis", Name: "Alula Borealis", RA: 11.308, Dec: 33.094, Magnitude: 3.49},
	{ID: "chara", Name: "Chara", RA: 12.5624, Dec: 41.357, Magnitude: 4.26},
	{ID: "asterion", Name: "Asterion", RA: 12.9526, Dec: 38.318, Magnitude: 4.25},
	{ID: "diadem", Name: "Diadem", RA: 13.16647, Dec: 17.529, Magnitude: 4.32},
	{ID: "zaniah", Name: "Zaniah", RA: 12.33173, Dec: -0.667, Magnitude: 3.89},
	{ID: "auva", Name: "Auva", RA: 12.857, Dec: 3.397, Magnitude: 3.38},
	{ID: "heze", Name: "Heze", RA: 13.5782, Dec: -0.596, Magnitude: 3.37},
}

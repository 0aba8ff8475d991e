package cv

// PSI-MS accessions the reader interprets. Everything else is carried
// through untouched.
const (
	// Binary data compression.
	AccZlibCompression = "MS:1000574"
	AccNoCompression   = "MS:1000576"

	// Binary data precision.
	AccFloat32 = "MS:1000521"
	AccFloat64 = "MS:1000523"

	// Binary data array types.
	AccMZArray        = "MS:1000514"
	AccIntensityArray = "MS:1000515"
	AccTimeArray      = "MS:1000595"

	// Spectrum description.
	AccMSLevel          = "MS:1000511"
	AccMS1Spectrum      = "MS:1000579"
	AccMSnSpectrum      = "MS:1000580"
	AccPositiveScan     = "MS:1000130"
	AccNegativeScan     = "MS:1000129"
	AccCentroidSpectrum = "MS:1000127"
	AccProfileSpectrum  = "MS:1000128"

	// Document integrity.
	AccSHA1 = "MS:1000569"
)

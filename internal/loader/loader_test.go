package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validSources(t *testing.T) Sources {
	dir := t.TempDir()
	return Sources{
		Providers: writeCSV(t, dir, "providers.csv",
			"Provider_ID,Name,Type,Address,City,Contact\n"+
				"1,Alpha Deli,Restaurant,1 Main St,Austin,555-0101\n"+
				"2,Beta Mart,Grocery Store,2 Oak Ave,Austin,555-0102\n"+
				"3,Gamma Farms,Supermarket,3 Farm Rd,Boston,555-0103\n"),
		Receivers: writeCSV(t, dir, "receivers.csv",
			"Receiver_ID,Name,Type,City,Contact\n"+
				"1,City Shelter,Shelter,Austin,555-0201\n"),
		Listings: writeCSV(t, dir, "listings.csv",
			"Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Provider_Type,Location,Food_Type,Meal_Type\n"+
				"10,Bread,2,2026-09-10,1,Restaurant,Austin,Vegetarian,Breakfast\n"+
				"11,Rice,3,2026-09-15,2,Grocery Store,Austin,Vegan,Lunch\n"),
		Claims: writeCSV(t, dir, "claims.csv",
			"Claim_ID,Food_ID,Receiver_ID,Status,Timestamp\n"+
				"5,10,1,Completed,2026-08-01 10:00:00\n"+
				"6,11,1,Pending,2026-08-02 11:30:00\n"),
	}
}

func TestLoadParsesAllTables(t *testing.T) {
	ds, err := Load(validSources(t))
	require.NoError(t, err)

	require.Len(t, ds.Providers, 3)
	assert.Equal(t, 1, ds.Providers[0].ID)
	assert.Equal(t, "Alpha Deli", ds.Providers[0].Name)
	assert.Equal(t, "Austin", ds.Providers[0].City)

	require.Len(t, ds.Receivers, 1)
	assert.Equal(t, "City Shelter", ds.Receivers[0].Name)

	require.Len(t, ds.Listings, 2)
	assert.Equal(t, 10, ds.Listings[0].ID)
	assert.Equal(t, 2, ds.Listings[0].Quantity)
	assert.Equal(t, "2026-09-10", ds.Listings[0].ExpiryDate)
	assert.Equal(t, 1, ds.Listings[0].ProviderID)

	require.Len(t, ds.Claims, 2)
	// Raw status case survives the load; reports normalize at query time
	assert.Equal(t, "Completed", ds.Claims[0].Status)
	assert.Equal(t, "Pending", ds.Claims[1].Status)
}

func TestLoadHeaderNormalization(t *testing.T) {
	dir := t.TempDir()
	// Mixed case and spaces in headers must still match
	path := writeCSV(t, dir, "providers.csv",
		"provider id,NAME,Type,city\n"+
			"7,Delta Cafe,Restaurant,Dallas\n")

	providers, err := LoadProviders(path)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, 7, providers[0].ID)
	assert.Equal(t, "Delta Cafe", providers[0].Name)
	// Optional columns simply come back empty
	assert.Empty(t, providers[0].Contact)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadProviders(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "providers.csv",
		"Provider_ID,Name,Type\n"+ // no city column
			"1,Alpha Deli,Restaurant\n")

	_, err := LoadProviders(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Contains(t, err.Error(), "city")
}

func TestLoadBadRowReportsLineNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "providers.csv",
		"Provider_ID,Name,Type,City\n"+
			"1,Alpha Deli,Restaurant,Austin\n"+
			"oops,Beta Mart,Grocery Store,Austin\n")

	_, err := LoadProviders(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadRejectsNegativeQuantity(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "listings.csv",
		"Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Location\n"+
			"10,Bread,-2,2026-09-10,1,Austin\n")

	_, err := LoadListings(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "negative quantity")
}

func TestLoadRejectsMalformedExpiryDate(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "listings.csv",
		"Food_ID,Food_Name,Quantity,Expiry_Date,Provider_ID,Location\n"+
			"10,Bread,2,09/10/2026,1,Austin\n")

	_, err := LoadListings(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "bad expiry date")
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadRejectsMalformedClaimTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "claims.csv",
		"Claim_ID,Food_ID,Receiver_ID,Status,Timestamp\n"+
			"5,10,1,Completed,2026-08-01 10:00:00\n"+
			"6,10,1,Pending,yesterday\n")

	_, err := LoadClaims(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "bad timestamp")
	assert.Contains(t, err.Error(), "line 3")
}

func TestLoadAllowsMissingClaimTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "claims.csv",
		"Claim_ID,Food_ID,Receiver_ID,Status\n"+
			"5,10,1,Completed\n")

	claims, err := LoadClaims(path)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Empty(t, claims[0].Timestamp)
}

func TestLoadRejectsUnknownClaimStatus(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "claims.csv",
		"Claim_ID,Food_ID,Receiver_ID,Status\n"+
			"5,10,1,Maybe\n")

	_, err := LoadClaims(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRow)
	assert.Contains(t, err.Error(), "Maybe")
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "providers.csv", "")

	_, err := LoadProviders(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadHeaderOnlyFileIsEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "providers.csv", "Provider_ID,Name,Type,City\n")

	providers, err := LoadProviders(path)
	require.NoError(t, err)
	assert.Empty(t, providers)
}

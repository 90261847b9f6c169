package recon

// lastWins indexes rows by key. Duplicate keys keep the record that appears last
// in the input; that is the defined duplicate policy for existence joins.
func lastWins[T any](rows []T, key func(T) string) map[string]T {
	index := make(map[string]T, len(rows))
	for _, row := range rows {
		index[key(row)] = row
	}
	return index
}

// sumByKey accumulates a numeric amount per key. Unlike lastWins, duplicate keys
// add up; a missing key starts from 0. Rows whose key extracts to "" are skipped.
func sumByKey[T any](rows []T, key func(T) string, amount func(T) float64) map[string]float64 {
	totals := make(map[string]float64)
	for _, row := range rows {
		k := key(row)
		if k == "" {
			continue
		}
		totals[k] += amount(row)
	}
	return totals
}

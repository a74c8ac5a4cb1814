// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and transformation. The stl and
// mstl packages operate on plain []float64 slices, so Series.Values plugs
// straight into them.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	median := series.Median()
//	spread := series.Range()
//
// # Transformations
//
// Transform the time series:
//
//	logged := series.Log()              // Natural log
//	stable, err := series.BoxCox(0.5)   // Box-Cox power transform
//	ma := series.MovingAverage(7)       // Moving average
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	clone := series.Copy()
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries

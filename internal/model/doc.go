// Package model defines the data structures shared by the loader, the
// travel API client and the presentation layers.
//
// # Payloads
//
// Two payload shapes are fetched from the API:
//
//	var places model.PlaceList            // category listing, server order
//	var detail model.DestinationDetail    // destination description + photos
//
// # Catalog
//
// The discover screen's categories, destinations and restaurants are static:
//
//	for _, c := range model.Categories() {
//	    fmt.Println(c.Icon, c.Name)
//	}
//
//	paris, _ := model.FindDestination("Paris")
//	region := paris.Region() // centered on Paris, 0.1° span
package model

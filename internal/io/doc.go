// Package ioutils provides image processing for terminal previews.
//
// # Image Processing
//
// The ImageService turns place thumbnails and destination photos into
// something a terminal can show:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 32x32 pixels
//	img, _ := svc.ResizeImage(ctx, imageData, 32, 32)
//
//	// Render as coloured half blocks, two pixel rows per line
//	fmt.Println(svc.RenderBlocks(img))
//
// JPEG, PNG, GIF and WebP inputs are supported.
package ioutils

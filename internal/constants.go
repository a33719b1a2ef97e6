/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	Version   = "0.1.0"
	UserAgent = "swisstd/" + Version + " (+https://github.com/mikeb26/swisstd)"
)

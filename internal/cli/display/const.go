// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package display

const (
	Tool       = "plansheet"
	BannerBlue = `
ooooooo   oo        o0000o    oo    oo
oo    o0  oo       0o    o0   o0o   oo
oo    oo  oo       oo    oo   oo0o  oo
ooooo0o   oo       oooooooo   oo 0o oo
oo        oo       oo    oo   oo  0ooo
oo        oo       oo    oo   oo   0oo
oo        oooooo0  oo    oo   oo    oo
`
	BannerGold = `
 o0000o   oo    oo  oooooo0  oooooo0  oooooooo
0o    o0  oo    oo  oo       oo          oo
0o        oo    oo  oo       oo          oo
 o0000o   oooooooo  ooooo0   ooooo0      oo
      0o  oo    oo  oo       oo          oo
o0    0o  oo    oo  oo       oo          oo
 o0000o   oo    oo  oooooo0  oooooo0     oo     vversion
`
	DocRoot = "https://docs.plansheet.io/en/latest"
)

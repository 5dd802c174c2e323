// Copyright 2026 The interlex-export Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lang

// defaultLanguages is the table of locales Interlex files have been observed
// to use. It covers the Windows-1250 and Windows-1252 locales. Interlex
// supports more; extending the table is just a matter of adding rows.
//
// Language identifiers are Windows LCIDs.
// See https://www.science.co.il/language/Locale-codes.php
var defaultLanguages = map[uint16]Info{
	1078:  {Name: "Afrikaans", CodePage: Windows1252},
	1052:  {Name: "Albanian", CodePage: Windows1250},
	1069:  {Name: "Basque", CodePage: Windows1252},
	1027:  {Name: "Catalan", CodePage: Windows1252},
	1050:  {Name: "Croatian", CodePage: Windows1250},
	1029:  {Name: "Czech", CodePage: Windows1250},
	1030:  {Name: "Danish", CodePage: Windows1252},
	2067:  {Name: "Dutch", Variant: "Belgian", CodePage: Windows1252},
	1043:  {Name: "Dutch", Variant: "Standard", CodePage: Windows1252},
	3081:  {Name: "English", Variant: "Australian", CodePage: Windows1252},
	4105:  {Name: "English", Variant: "Canadian", CodePage: Windows1252},
	9225:  {Name: "English", Variant: "Caribbean", CodePage: Windows1252},
	6153:  {Name: "English", Variant: "Ireland", CodePage: Windows1252},
	8201:  {Name: "English", Variant: "Jamaica", CodePage: Windows1252},
	5129:  {Name: "English", Variant: "New Zealand", CodePage: Windows1252},
	7177:  {Name: "English", Variant: "South Africa", CodePage: Windows1252},
	2057:  {Name: "English", Variant: "United Kingdom", CodePage: Windows1252},
	1033:  {Name: "English", Variant: "United States", CodePage: Windows1252},
	1035:  {Name: "Finnish", CodePage: Windows1252},
	2060:  {Name: "French", Variant: "Belgian", CodePage: Windows1252},
	3084:  {Name: "French", Variant: "Canadian", CodePage: Windows1252},
	5132:  {Name: "French", Variant: "Luxembourg", CodePage: Windows1252},
	1036:  {Name: "French", Variant: "Standard", CodePage: Windows1252},
	4108:  {Name: "French", Variant: "Swiss", CodePage: Windows1252},
	3079:  {Name: "German", Variant: "Austrian", CodePage: Windows1252},
	5127:  {Name: "German", Variant: "Liechtenstein", CodePage: Windows1252},
	4103:  {Name: "German", Variant: "Luxembourg", CodePage: Windows1252},
	1031:  {Name: "German", Variant: "Standard", CodePage: Windows1252},
	2055:  {Name: "German", Variant: "Swiss", CodePage: Windows1252},
	1038:  {Name: "Hungarian", CodePage: Windows1250},
	1039:  {Name: "Icelandic", CodePage: Windows1252},
	1057:  {Name: "Indonesian", CodePage: Windows1252},
	1040:  {Name: "Italian", Variant: "Standard", CodePage: Windows1252},
	2064:  {Name: "Italian", Variant: "Swiss", CodePage: Windows1252},
	1044:  {Name: "Norwegian", Variant: "Bokmal", CodePage: Windows1252},
	2068:  {Name: "Norwegian", Variant: "Nynorsk", CodePage: Windows1252},
	1045:  {Name: "Polish", CodePage: Windows1250},
	1046:  {Name: "Portuguese", Variant: "Brazilian", CodePage: Windows1252},
	2070:  {Name: "Portuguese", Variant: "Standard", CodePage: Windows1252},
	1048:  {Name: "Romanian", CodePage: Windows1250},
	2074:  {Name: "Serbian", Variant: "Latin", CodePage: Windows1250},
	1051:  {Name: "Slovak", CodePage: Windows1250},
	1060:  {Name: "Slovenian", CodePage: Windows1250},
	11274: {Name: "Spanish", Variant: "Argentina", CodePage: Windows1252},
	16394: {Name: "Spanish", Variant: "Bolivia", CodePage: Windows1252},
	13322: {Name: "Spanish", Variant: "Chile", CodePage: Windows1252},
	9226:  {Name: "Spanish", Variant: "Colombia", CodePage: Windows1252},
	5130:  {Name: "Spanish", Variant: "Costa Rica", CodePage: Windows1252},
	7178:  {Name: "Spanish", Variant: "Dominican Republic", CodePage: Windows1252},
	12298: {Name: "Spanish", Variant: "Ecuador", CodePage: Windows1252},
	17418: {Name: "Spanish", Variant: "El Salvador", CodePage: Windows1252},
	4106:  {Name: "Spanish", Variant: "Guatemala", CodePage: Windows1252},
	18442: {Name: "Spanish", Variant: "Honduras", CodePage: Windows1252},
	3082:  {Name: "Spanish", Variant: "International Sort", CodePage: Windows1252},
	2058:  {Name: "Spanish", Variant: "Mexico", CodePage: Windows1252},
	19466: {Name: "Spanish", Variant: "Nicaragua", CodePage: Windows1252},
	6154:  {Name: "Spanish", Variant: "Panama", CodePage: Windows1252},
	15370: {Name: "Spanish", Variant: "Paraguay", CodePage: Windows1252},
	10250: {Name: "Spanish", Variant: "Peru", CodePage: Windows1252},
	20490: {Name: "Spanish", Variant: "Puerto Rico", CodePage: Windows1252},
	1034:  {Name: "Spanish", Variant: "Traditional Sort", CodePage: Windows1252},
	14346: {Name: "Spanish", Variant: "Uruguay", CodePage: Windows1252},
	8202:  {Name: "Spanish", Variant: "Venezuela", CodePage: Windows1252},
	1053:  {Name: "Swedish", CodePage: Windows1252},
}

// DefaultRegistry returns a registry with the default language table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultLanguages)
	if err != nil {
		// The default table is static; a duplicate is a programming error.
		panic(err)
	}
	return r
}

package reference

import "math"

// SectorPERatio holds trailing S&P 500 sector P/E multiples keyed by the
// vendor's sector naming. Snapshot as of Oct 2025
// (worldperatio.com/sp-500-sectors, mapped to finance.yahoo.com/sectors).
var SectorPERatio = map[string]float64{
	"Technology":             38.50,
	"Real Estate":            35.28,
	"Consumer Cyclical":      29.69,
	"Basic Materials":        26.98,
	"Industrials":            26.84,
	"Healthcare":             24.43,
	"Consumer Defensive":     22.73,
	"Utilities":              21.74,
	"Financial Services":     19.64,
	"Communication Services": 19.35,
	"Energy":                 17.64,
}

// IndustryMargin is one row of the industry net-margin benchmark table.
// NetMargin is NaN where the source published no figure.
type IndustryMargin struct {
	NetMargin float64
	Count     int
}

var noMargin = math.NaN()

// IndustryNetMargin holds average net profit margin (in percent) by industry.
// Snapshot as of Sep 2025 (fullratio.com/profit-margin-by-industry).
var IndustryNetMargin = map[string]IndustryMargin{
	"Advertising Agencies":                     {NetMargin: -2.5, Count: 27},
	"Aerospace & Defense":                      {NetMargin: 6.4, Count: 57},
	"Agricultural Inputs":                      {NetMargin: 1.2, Count: 11},
	"Airlines":                                 {NetMargin: 1.1, Count: 13},
	"Airports & Air Services":                  {NetMargin: noMargin, Count: 5},
	"Aluminum":                                 {NetMargin: 3.8, Count: 4},
	"Apparel Manufacturing":                    {NetMargin: 2.6, Count: 15},
	"Apparel Retail":                           {NetMargin: 2.5, Count: 29},
	"Asset Management":                         {NetMargin: 21.8, Count: 83},
	"Auto Manufacturers":                       {NetMargin: 4.7, Count: 17},
	"Auto Parts":                               {NetMargin: 2.8, Count: 44},
	"Auto & Truck Dealerships":                 {NetMargin: 0.6, Count: 20},
	"Banks - Diversified":                      {NetMargin: 29.6, Count: 5},
	"Banks - Regional":                         {NetMargin: 24.2, Count: 288},
	"Beverages - Non-Alcoholic":                {NetMargin: 9.7, Count: 12},
	"Beverages - Wineries & Distilleries":      {NetMargin: 4.0, Count: 6},
	"Biotechnology":                            {NetMargin: -169.7, Count: 476},
	"Broadcasting":                             {NetMargin: 3.8, Count: 10},
	"Building Materials":                       {NetMargin: 14.4, Count: 10},
	"Building Products & Equipment":            {NetMargin: 6.6, Count: 27},
	"Business Equipment & Supplies":            {NetMargin: 4.0, Count: 5},
	"Capital Markets":                          {NetMargin: 15.0, Count: 48},
	"Chemicals":                                {NetMargin: -3.8, Count: 15},
	"Coking Coal":                              {NetMargin: 0.6, Count: 5},
	"Communication Equipment":                  {NetMargin: -1.5, Count: 43},
	"Computer Hardware":                        {NetMargin: -3.8, Count: 28},
	"Conglomerates":                            {NetMargin: -0.2, Count: 15},
	"Consulting Services":                      {NetMargin: 6.8, Count: 14},
	"Consumer Electronics":                     {NetMargin: -5.7, Count: 8},
	"Copper":                                   {NetMargin: noMargin, Count: 4},
	"Credit Services":                          {NetMargin: 18.0, Count: 40},
	"Diagnostics & Research":                   {NetMargin: -46.4, Count: 46},
	"Discount Stores":                          {NetMargin: 1.7, Count: 8},
	"Drug Manufacturers - General":             {NetMargin: -0.6, Count: 14},
	"Drug Manufacturers - Specialty & Generic": {NetMargin: -28.5, Count: 48},
	"Education & Training Services":            {NetMargin: 8.2, Count: 19},
	"Electrical Equipment & Parts":             {NetMargin: 4.6, Count: 39},
	"Electronic Components":                    {NetMargin: 2.4, Count: 35},
	"Electronic Gaming & Multimedia":           {NetMargin: -3.3, Count: 12},
	"Electronics & Computer Distribution":      {NetMargin: 0.4, Count: 9},
	"Engineering & Construction":               {NetMargin: 4.4, Count: 36},
	"Entertainment":                            {NetMargin: 0.9, Count: 35},
	"Farm & Heavy Construction Machinery":      {NetMargin: 5.0, Count: 19},
	"Farm Products":                            {NetMargin: 0.8, Count: 15},
	"Financial Data & Stock Exchanges":         {NetMargin: 32.6, Count: 11},
	"Food Distribution":                        {NetMargin: 0.7, Count: 11},
	"Footwear & Accessories":                   {NetMargin: 6.6, Count: 9},
	"Furnishings, Fixtures & Appliances":       {NetMargin: 0.2, Count: 25},
	"Gambling":                                 {NetMargin: 7.4, Count: 9},
	"Gold":                                     {NetMargin: 16.0, Count: 31},
	"Grocery Stores":                           {NetMargin: 2.3, Count: 9},
	"Healthcare Plans":                         {NetMargin: 0.1, Count: 11},
	"Health Information Services":              {NetMargin: -19.1, Count: 40},
	"Home Improvement Retail":                  {NetMargin: 2.8, Count: 8},
	"Household & Personal Products":            {NetMargin: 4.3, Count: 24},
	"Industrial Distribution":                  {NetMargin: 4.9, Count: 17},
	"Information Technology Services":          {NetMargin: 4.9, Count: 49},
	"Insurance Brokers":                        {NetMargin: 8.0, Count: 13},
	"Insurance - Diversified":                  {NetMargin: 11.4, Count: 9},
	"Insurance - Life":                         {NetMargin: 6.7, Count: 15},
	"Insurance - Property & Casualty":          {NetMargin: 10.5, Count: 36},
	"Insurance - Reinsurance":                  {NetMargin: 8.2, Count: 8},
	"Insurance - Specialty":                    {NetMargin: 18.7, Count: 20},
	"Integrated Freight & Logistics":           {NetMargin: 0.9, Count: 17},
	"Internet Content & Information":           {NetMargin: -1.5, Count: 45},
	"Internet Retail":                          {NetMargin: 3.8, Count: 26},
	"Leisure":                                  {NetMargin: 0.5, Count: 23},
	"Lodging":                                  {NetMargin: 7.9, Count: 8},
	"Luxury Goods":                             {NetMargin: 0.0, Count: 8},
	"Marine Shipping":                          {NetMargin: 13.1, Count: 24},
	"Medical Care Facilities":                  {NetMargin: 0.4, Count: 38},
	"Medical Devices":                          {NetMargin: -51.0, Count: 110},
	"Medical Distribution":                     {NetMargin: -4.8, Count: 6},
	"Medical Instruments & Supplies":           {NetMargin: -14.6, Count: 42},
	"Metal Fabrication":                        {NetMargin: 4.6, Count: 15},
	"Mortgage Finance":                         {NetMargin: 13.5, Count: 15},
	"Oil & Gas Drilling":                       {NetMargin: -1.0, Count: 8},
	"Oil & Gas E&P":                            {NetMargin: 10.9, Count: 60},
	"Oil & Gas Equipment & Services":           {NetMargin: 3.8, Count: 42},
	"Oil & Gas Integrated":                     {NetMargin: 7.0, Count: 6},
	"Oil & Gas Midstream":                      {NetMargin: 17.7, Count: 36},
	"Oil & Gas Refining & Marketing":           {NetMargin: 1.3, Count: 17},
	"Other Industrial Metals & Mining":         {NetMargin: -4.3, Count: 17},
	"Other Precious Metals & Mining":           {NetMargin: -8.1, Count: 10},
	"Packaged Foods":                           {NetMargin: 2.7, Count: 46},
	"Packaging & Containers":                   {NetMargin: 3.7, Count: 20},
	"Paper & Paper Products":                   {NetMargin: 2.1, Count: 4},
	"Personal Services":                        {NetMargin: 9.1, Count: 10},
	"Pollution & Treatment Controls":           {NetMargin: 7.6, Count: 12},
	"Publishing":                               {NetMargin: -1.2, Count: 7},
	"Railroads":                                {NetMargin: 13.0, Count: 8},
	"Real Estate - Development":                {NetMargin: 16.9, Count: 8},
	"Real Estate - Diversified":                {NetMargin: 9.0, Count: 4},
	"Real Estate Services":                     {NetMargin: 0.0, Count: 30},
	"Recreational Vehicles":                    {NetMargin: 1.1, Count: 11},
	"REIT - Diversified":                       {NetMargin: 12.9, Count: 16},
	"REIT - Healthcare Facilities":             {NetMargin: 13.1, Count: 16},
	"REIT - Hotel & Motel":                     {NetMargin: 1.6, Count: 14},
	"REIT - Industrial":                        {NetMargin: 27.8, Count: 17},
	"REIT - Mortgage":                          {NetMargin: 30.0, Count: 40},
	"REIT - Office":                            {NetMargin: -5.7, Count: 22},
	"REIT - Residential":                       {NetMargin: 10.2, Count: 20},
	"REIT - Retail":                            {NetMargin: 19.7, Count: 26},
	"REIT - Specialty":                         {NetMargin: 18.4, Count: 19},
	"Rental & Leasing Services":                {NetMargin: 7.1, Count: 18},
	"Residential Construction":                 {NetMargin: 9.1, Count: 22},
	"Resorts & Casinos":                        {NetMargin: 2.1, Count: 16},
	"Restaurants":                              {NetMargin: 3.1, Count: 43},
	"Scientific & Technical Instruments":       {NetMargin: 11.7, Count: 24},
	"Security & Protection Services":           {NetMargin: 7.9, Count: 15},
	"Semiconductor Equipment & Materials":      {NetMargin: 2.3, Count: 27},
	"Semiconductors":                           {NetMargin: -1.6, Count: 60},
	"Software - Application":                   {NetMargin: -0.9, Count: 169},
	"Software - Infrastructure":                {NetMargin: 0.9, Count: 119},
	"Solar":                                    {NetMargin: -11.7, Count: 19},
	"Specialty Business Services":              {NetMargin: 4.3, Count: 31},
	"Specialty Chemicals":                      {NetMargin: 3.2, Count: 50},
	"Specialty Industrial Machinery":           {NetMargin: 9.6, Count: 68},
	"Specialty Retail":                         {NetMargin: 2.1, Count: 36},
	"Staffing & Employment Services":           {NetMargin: 2.5, Count: 21},
	"Steel":                                    {NetMargin: 0.9, Count: 11},
	"Telecom Services":                         {NetMargin: -2.0, Count: 33},
	"Thermal Coal":                             {NetMargin: 6.5, Count: 6},
	"Tobacco":                                  {NetMargin: noMargin, Count: 8},
	"Tools & Accessories":                      {NetMargin: 7.5, Count: 9},
	"Travel Services":                          {NetMargin: 9.3, Count: 12},
	"Trucking":                                 {NetMargin: 2.7, Count: 13},
	"Uranium":                                  {NetMargin: noMargin, Count: 5},
	"Utilities - Diversified":                  {NetMargin: 11.2, Count: 10},
	"Utilities - Regulated Electric":           {NetMargin: 12.8, Count: 32},
	"Utilities - Regulated Gas":                {NetMargin: 11.2, Count: 16},
	"Utilities - Regulated Water":              {NetMargin: 17.6, Count: 13},
	"Utilities - Renewable":                    {NetMargin: 7.7, Count: 15},
	"Waste Management":                         {NetMargin: 2.1, Count: 13},
}

// RiskFreeRate holds 10-year government bond yields by country.
// Snapshot as of 28-Sep-2025 (worldgovernmentbonds.com).
var RiskFreeRate = map[string]float64{
	"Switzerland":    0.00219,
	"Taiwan":         0.01372,
	"Japan":          0.01659,
	"China":          0.01914,
	"Singapore":      0.01938,
	"Denmark":        0.02579,
	"Sweden":         0.02674,
	"Germany":        0.02744,
	"Morocco":        0.02876,
	"Netherlands":    0.02901,
	"South Korea":    0.02943,
	"Ireland":        0.02988,
	"Austria":        0.03048,
	"Croatia":        0.03066,
	"Slovenia":       0.03088,
	"Hong Kong":      0.03103,
	"Cyprus":         0.03112,
	"Finland":        0.03123,
	"Portugal":       0.03185,
	"Canada":         0.03228,
	"Belgium":        0.03300,
	"Spain":          0.03320,
	"Malta":          0.03439,
	"Greece":         0.03462,
	"Malaysia":       0.03471,
	"Slovakia":       0.03493,
	"France":         0.03572,
	"Italy":          0.03612,
	"Lithuania":      0.03678,
	"Vietnam":        0.03759,
	"Bulgaria":       0.03850,
	"Norway":         0.04088,
	"United States":  0.04187,
	"Israel":         0.04193,
	"New Zealand":    0.04257,
	"Qatar":          0.04296,
	"Australia":      0.04392,
	"Czech Republic": 0.04540,
	"United Kingdom": 0.04747,
	"Peru":           0.05293,
	"Serbia":         0.05315,
	"Poland":         0.05550,
	"Chile":          0.05580,
	"Mauritius":      0.05640,
	"Philippines":    0.06025,
	"Bahrain":        0.06063,
	"Indonesia":      0.06431,
	"India":          0.06517,
	"Iceland":        0.06787,
	"Hungary":        0.06920,
	"Romania":        0.07330,
	"Jordan":         0.08501,
	"Mexico":         0.08550,
	"South Africa":   0.09165,
	"Botswana":       0.09199,
	"Bangladesh":     0.09890,
	"Namibia":        0.10422,
	"Colombia":       0.11293,
	"Sri Lanka":      0.11519,
	"Pakistan":       0.12002,
	"Kenya":          0.13430,
	"Brazil":         0.13667,
	"Russia":         0.14735,
	"Nigeria":        0.16643,
	"Kazakhstan":     0.16746,
	"Uganda":         0.16927,
	"Zambia":         0.19500,
	"Ukraine":        0.20410,
	"Egypt":          0.21760,
	"Turkey":         0.29500,
}

// DefaultRiskFreeRate backs the double fallback: country miss -> United
// States rate -> this constant.
const DefaultRiskFreeRate = 0.03

// CountryETF maps a listing country onto the broad-market ETF used as the
// beta benchmark index.
var CountryETF = map[string]string{
	// North America
	"United States": "VOO",
	"Canada":        "EWC",
	"Mexico":        "EWW",

	// Europe
	"Germany":        "EWG",
	"United Kingdom": "EWU",
	"France":         "EWQ",
	"Switzerland":    "EWL",
	"Netherlands":    "EWN",
	"Spain":          "EWP",
	"Italy":          "EWI",
	"Sweden":         "EWD",

	// Asia-Pacific
	"Japan":       "EWJ",
	"China":       "MCHI",
	"Hong Kong":   "EWH",
	"Taiwan":      "EWT",
	"South Korea": "EWY",
	"India":       "INDA",
	"Australia":   "EWA",

	// South America
	"Brazil":   "EWZ",
	"Chile":    "ECH",
	"Peru":     "EPU",
	"Colombia": "GXG",

	// Other / emerging
	"South Africa": "EZA",
	"Turkey":       "TUR",
}

// DefaultBenchmarkETF is the index used when the listing country has no
// dedicated ETF mapping.
const DefaultBenchmarkETF = "VOO"

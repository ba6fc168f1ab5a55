package classifier

import "khadamat/models"

func IsCarWash(n models.Localized) bool        { return Default.Matches(CarWash, n) }
func IsCarWashCenter(n models.Localized) bool  { return Default.Matches(CarWashCenter, n) }
func IsCarWashHome(n models.Localized) bool    { return Default.Matches(CarWashHome, n) }
func IsLaundryIroning(n models.Localized) bool { return Default.Matches(LaundryIroning, n) }
func IsCarpetSofa(n models.Localized) bool     { return Default.Matches(CarpetSofa, n) }
func IsOffice(n models.Localized) bool         { return Default.Matches(Office, n) }
func IsFactory(n models.Localized) bool        { return Default.Matches(Factory, n) }
func IsHotelAirbnb(n models.Localized) bool    { return Default.Matches(HotelAirbnb, n) }
func IsPool(n models.Localized) bool           { return Default.Matches(Pool, n) }
func IsShoes(n models.Localized) bool          { return Default.Matches(Shoes, n) }
func IsKitchen(n models.Localized) bool        { return Default.Matches(Kitchen, n) }
func IsHousekeeping(n models.Localized) bool   { return Default.Matches(Housekeeping, n) }

package prompt

// Static vocabulary data. Fragments are deliberately distinct literal
// phrases; the parser relies on no fragment being a substring of an
// unrelated fragment, so additions here must preserve that.

var genreOptions = []Option{
	{ID: "cinematic", Label: "Cinematic", Fragment: "cinematic"},
	{ID: "photorealistic", Label: "Photorealistic", Fragment: "photorealistic"},
	{ID: "ultra-realistic", Label: "Ultra-Realistic", Fragment: "ultra-realistic"},
}

var cameraTypes = []Option{
	{ID: "dslr", Label: "DSLR", Fragment: "professional DSLR camera"},
	{ID: "mirrorless", Label: "Mirrorless", Fragment: "mirrorless camera"},
	{ID: "medium-format", Label: "Medium Format", Fragment: "medium format camera"},
	{ID: "large-format", Label: "Large Format 4x5", Fragment: "large format 4x5 camera"},
	{ID: "hasselblad", Label: "Hasselblad", Fragment: "Hasselblad"},
	{ID: "leica", Label: "Leica", Fragment: "Leica"},
	{ID: "canon-5d", Label: "Canon 5D Mark IV", Fragment: "Canon 5D Mark IV"},
	{ID: "sony-a7", Label: "Sony A7R IV", Fragment: "Sony A7R IV"},
	{ID: "nikon-z9", Label: "Nikon Z9", Fragment: "Nikon Z9"},
	{ID: "red-cinema", Label: "RED Cinema Camera", Fragment: "RED cinema camera"},
	{ID: "arri-alexa", Label: "ARRI Alexa", Fragment: "ARRI Alexa"},
	{ID: "polaroid", Label: "Polaroid", Fragment: "Polaroid instant photo"},
	{ID: "disposable", Label: "Disposable Camera", Fragment: "disposable camera aesthetic"},
	{ID: "iphone", Label: "iPhone Pro", Fragment: "iPhone Pro"},
}

var cameraAngles = []Option{
	{ID: "height-eye", Label: "Eye", Fragment: "Eye-level", Group: "Height", Tooltip: "Camera at eye level with subject"},
	{ID: "height-high", Label: "High", Fragment: "High-angle", Group: "Height", Tooltip: "Camera above subject looking down"},
	{ID: "height-low", Label: "Low", Fragment: "Low-angle", Group: "Height", Tooltip: "Camera below subject looking up"},
	{ID: "height-worm", Label: "Worm", Fragment: "Worm's eye-view", Group: "Height", Tooltip: "Extreme low angle from ground level"},
	{ID: "height-top", Label: "Top", Fragment: "Top-down-view", Group: "Height", Tooltip: "Camera directly above looking straight down"},
	{ID: "height-aerial", Label: "Aerial", Fragment: "Aerial view", Group: "Height", Tooltip: "High altitude from above"},

	{ID: "view-front", Label: "Front", Fragment: "from the front", Group: "View", Tooltip: "Subject facing directly at camera"},
	{ID: "view-side", Label: "Side", Fragment: "from the side", Group: "View", Tooltip: "Profile from the side"},
	{ID: "view-three-quarter", Label: "¾", Fragment: "three quarters", Group: "View", Tooltip: "Subject angled 45 degrees to camera"},
	{ID: "view-ots", Label: "OTS", Fragment: "over-the-shoulder", Group: "View", Tooltip: "Camera behind one person looking at another"},
	{ID: "view-rear", Label: "Rear", Fragment: "from the rear", Group: "View", Tooltip: "From behind the subject"},
	{ID: "view-dutch", Label: "Dutch", Fragment: "Dutch angle", Group: "View", Tooltip: "Camera tilted creating unease or tension"},

	{ID: "size-xwide", Label: "Xwide", Fragment: "extreme wide shot,", Group: "Size", Tooltip: "Vast scene where subject may be barely visible"},
	{ID: "size-wide", Label: "Wide", Fragment: "wide shot,", Group: "Size", Tooltip: "Full body visible with environment"},
	{ID: "size-medium", Label: "Medium", Fragment: "medium shot,", Group: "Size", Tooltip: "Subject from waist up"},
	{ID: "size-close", Label: "Close", Fragment: "closeup shot,", Group: "Size", Tooltip: "Face or specific detail fills frame"},
	{ID: "size-xclose", Label: "Xclose", Fragment: "extreme closeup,", Group: "Size", Tooltip: "Tight on specific detail like eyes"},
}

var lensStyleOptions = []Option{
	{ID: "spherical", Label: "Spherical", Fragment: "Spherical"},
	{ID: "anamorphic", Label: "Anamorphic", Fragment: "Anamorphic"},
	{ID: "vintage", Label: "Vintage", Fragment: "Vintage"},
}

var lensTypes = []Option{
	{ID: "fisheye", Label: "8mm Fisheye", Fragment: "on a 8mm fisheye lens"},
	{ID: "ultrawide", Label: "14mm Ultra Wide", Fragment: "on a 14mm lens"},
	{ID: "wide", Label: "24mm Wide", Fragment: "on a 24mm lens"},
	{ID: "standard-35", Label: "35mm Standard", Fragment: "on a 35mm lens"},
	{ID: "standard-50", Label: "50mm Nifty Fifty", Fragment: "on a 50mm lens"},
	{ID: "portrait-85", Label: "85mm Portrait", Fragment: "on a 85mm lens"},
	{ID: "portrait-105", Label: "105mm Portrait", Fragment: "on a 105mm lens"},
	{ID: "tele-135", Label: "135mm Telephoto", Fragment: "on a 135mm lens"},
	{ID: "tele-200", Label: "200mm Telephoto", Fragment: "on a 200mm lens"},
	{ID: "super-tele", Label: "400mm Super Telephoto", Fragment: "on a 400mm lens"},
	{ID: "macro", Label: "100mm Macro", Fragment: "on 100mm lens"},
}

var filmStocks = []Option{
	{ID: "kodak-portra-400", Label: "Kodak Portra 400", Fragment: "Kodak Portra 400 film"},
	{ID: "kodak-portra-800", Label: "Kodak Portra 800", Fragment: "Kodak Portra 800 film"},
	{ID: "kodak-ektar-100", Label: "Kodak Ektar 100", Fragment: "Kodak Ektar 100 film"},
	{ID: "kodak-gold-200", Label: "Kodak Gold 200", Fragment: "Kodak Gold 200 film"},
	{ID: "kodak-tri-x", Label: "Kodak Tri-X 400", Fragment: "Kodak Tri-X 400 black and white film"},
	{ID: "fuji-pro-400h", Label: "Fuji Pro 400H", Fragment: "Fuji Pro 400H film"},
	{ID: "fuji-superia", Label: "Fuji Superia", Fragment: "Fuji Superia film"},
	{ID: "fuji-velvia", Label: "Fuji Velvia 50", Fragment: "Fuji Velvia 50 slide film"},
	{ID: "ilford-hp5", Label: "Ilford HP5 Plus", Fragment: "Ilford HP5 Plus black and white film"},
	{ID: "ilford-delta", Label: "Ilford Delta 3200", Fragment: "Ilford Delta 3200 high grain black and white film"},
	{ID: "cinestill-800t", Label: "CineStill 800T", Fragment: "CineStill 800T tungsten film with halation"},
	{ID: "cinestill-50d", Label: "CineStill 50D", Fragment: "CineStill 50D daylight film"},
	{ID: "lomography", Label: "Lomography", Fragment: "Lomography film aesthetic with vignette and light leaks"},
}

var isoSettings = []Option{
	{ID: "iso-100", Label: "100", Fragment: "ISO 100", Group: "Low (for bright scenes)"},
	{ID: "iso-200", Label: "200", Fragment: "ISO 200", Group: "Low (for bright scenes)"},
	{ID: "iso-300", Label: "300", Fragment: "ISO 300", Group: "Low (for bright scenes)"},
	{ID: "iso-400-low", Label: "400", Fragment: "ISO 400", Group: "Low (for bright scenes)"},
	{ID: "iso-400", Label: "400", Fragment: "ISO 400", Group: "Medium (best for indoors)"},
	{ID: "iso-500", Label: "500", Fragment: "ISO 500", Group: "Medium (best for indoors)"},
	{ID: "iso-600", Label: "600", Fragment: "ISO 600", Group: "Medium (best for indoors)"},
	{ID: "iso-700", Label: "700", Fragment: "ISO 700", Group: "Medium (best for indoors)"},
	{ID: "iso-800", Label: "800", Fragment: "ISO 800", Group: "Medium (best for indoors)"},
	{ID: "iso-900", Label: "900", Fragment: "ISO 900", Group: "Medium (best for indoors)"},
	{ID: "iso-1000", Label: "1000", Fragment: "ISO 1000", Group: "Medium (best for indoors)"},
	{ID: "iso-1100", Label: "1100", Fragment: "ISO 1100", Group: "Medium (best for indoors)"},
	{ID: "iso-1200", Label: "1200", Fragment: "ISO 1200", Group: "Medium (best for indoors)"},
	{ID: "iso-1300", Label: "1300", Fragment: "ISO 1300", Group: "Medium (best for indoors)"},
	{ID: "iso-1400", Label: "1400", Fragment: "ISO 1400", Group: "Medium (best for indoors)"},
	{ID: "iso-1500", Label: "1500", Fragment: "ISO 1500", Group: "Medium (best for indoors)"},
	{ID: "iso-1600-med", Label: "1600", Fragment: "ISO 1600", Group: "Medium (best for indoors)"},
	{ID: "iso-1600", Label: "1600", Fragment: "ISO 1600", Group: "High (special use settings)"},
	{ID: "iso-1700", Label: "1700", Fragment: "ISO 1700", Group: "High (special use settings)"},
	{ID: "iso-1800", Label: "1800", Fragment: "ISO 1800", Group: "High (special use settings)"},
	{ID: "iso-1900", Label: "1900", Fragment: "ISO 1900", Group: "High (special use settings)"},
	{ID: "iso-2000", Label: "2000", Fragment: "ISO 2000", Group: "High (special use settings)"},
}

var apertureSettings = []Option{
	{ID: "f1.2", Label: "f/1.2", Fragment: "f/1.2 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f1.4", Label: "f/1.4", Fragment: "f/1.4 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f1.8", Label: "f/1.8", Fragment: "f/1.8 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f2.8", Label: "f/2.8", Fragment: "f/2.8 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f4", Label: "f/4", Fragment: "f/4 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f5.6", Label: "f/5.6", Fragment: "f/5.6 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f8", Label: "f/8", Fragment: "f/8 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f11", Label: "f/11", Fragment: "f/11 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f16", Label: "f/16", Fragment: "f/16 aperture", Group: "Lower f-stop increases Depth of Field"},
	{ID: "f22", Label: "f/22", Fragment: "f/22 aperture", Group: "Lower f-stop increases Depth of Field"},
}

var shutterSpeeds = []Option{
	{ID: "1-125", Label: "1/125s", Fragment: "1/125 shutter speed", Group: "Standard (Natural Look)"},
	{ID: "1-60", Label: "1/60s", Fragment: "1/60 shutter speed", Group: "Standard (Natural Look)"},
	{ID: "1-30", Label: "1/30s", Fragment: "1/30 shutter speed", Group: "Standard (Natural Look)"},
	{ID: "1-15", Label: "1/15s", Fragment: "1/15 shutter speed", Group: "Slow (Long Exposure)"},
	{ID: "1-8", Label: "1/8s", Fragment: "1/8 shutter speed", Group: "Slow (Long Exposure)"},
	{ID: "0.5s", Label: "0.5s", Fragment: "0.5 second exposure", Group: "Slow (Long Exposure)"},
	{ID: "1s", Label: "1s", Fragment: "1 second exposure", Group: "Slow (Long Exposure)"},
	{ID: "5s", Label: "5s", Fragment: "5 second exposure", Group: "Slow (Long Exposure)"},
	{ID: "1-250", Label: "1/250s", Fragment: "1/250 shutter speed", Group: "Fast (Freeze Motion)"},
	{ID: "1-500", Label: "1/500s", Fragment: "1/500 shutter speed", Group: "Fast (Freeze Motion)"},
	{ID: "1-1000", Label: "1/1000s", Fragment: "1/1000 shutter speed", Group: "Fast (Freeze Motion)"},
	{ID: "1-2000", Label: "1/2000s", Fragment: "1/2000 shutter speed", Group: "Fast (Freeze Motion)"},
	{ID: "1-4000", Label: "1/4000s", Fragment: "1/4000 shutter speed", Group: "Fast (Freeze Motion)"},
}

var wardrobeOptions = []Option{
	{ID: "casual", Label: "Casual", Fragment: "wearing casual clothes"},
	{ID: "formal", Label: "Formal", Fragment: "wearing formal attire"},
	{ID: "business", Label: "Business", Fragment: "wearing business attire"},
	{ID: "streetwear", Label: "Streetwear", Fragment: "wearing streetwear fashion"},
	{ID: "vintage", Label: "Vintage", Fragment: "wearing vintage clothing"},
	{ID: "bohemian", Label: "Bohemian", Fragment: "wearing bohemian style clothing"},
	{ID: "minimalist", Label: "Minimalist", Fragment: "wearing minimalist clothing"},
	{ID: "athletic", Label: "Athletic", Fragment: "wearing athletic wear"},
	{ID: "haute-couture", Label: "Haute Couture", Fragment: "wearing haute couture designer fashion"},
	{ID: "traditional", Label: "Traditional", Fragment: "wearing traditional cultural attire"},
	{ID: "cyberpunk", Label: "Cyberpunk", Fragment: "wearing cyberpunk futuristic clothing"},
	{ID: "fantasy", Label: "Fantasy", Fragment: "wearing fantasy costume"},
	{ID: "uniform", Label: "Uniform", Fragment: "wearing a uniform"},
	{ID: "layered", Label: "Layered", Fragment: "wearing layered clothing"},
}

var environments = []Option{
	{ID: "studio", Label: "Studio", Fragment: "in a photography studio"},
	{ID: "urban", Label: "Urban Street", Fragment: "on urban city street"},
	{ID: "nature", Label: "Nature", Fragment: "in nature setting"},
	{ID: "forest", Label: "Forest", Fragment: "in a dense forest"},
	{ID: "beach", Label: "Beach", Fragment: "on a beach"},
	{ID: "mountain", Label: "Mountain", Fragment: "in the mountains"},
	{ID: "desert", Label: "Desert", Fragment: "in the desert"},
	{ID: "industrial", Label: "Industrial", Fragment: "in industrial setting, abandoned warehouse"},
	{ID: "rooftop", Label: "Rooftop", Fragment: "on a rooftop"},
	{ID: "cafe", Label: "Café", Fragment: "in a cozy café"},
	{ID: "office", Label: "Office", Fragment: "in a modern office"},
	{ID: "home", Label: "Home Interior", Fragment: "in a home interior"},
	{ID: "garden", Label: "Garden", Fragment: "in a lush garden"},
	{ID: "underwater", Label: "Underwater", Fragment: "underwater"},
	{ID: "space", Label: "Space", Fragment: "in outer space"},
	{ID: "neon-city", Label: "Neon City", Fragment: "in neon-lit city at night"},
	{ID: "rain", Label: "Rain", Fragment: "in the rain"},
	{ID: "snow", Label: "Snow", Fragment: "in snowy landscape"},
}

var lightingOptions = []Option{
	{ID: "dramatic-rim", Label: "Dramatic Rim", Fragment: "rim lighting emphasizing the edges of the subject", Tooltip: "Emphasizes the edges of a subject by positioning a light source behind or slightly to the side, producing a halo or outline effect."},
	{ID: "soft-studio", Label: "Soft Studio", Fragment: "softstudio lighting creating gentle transitions between light and shadow", Tooltip: "Creates gentle transitions between light and shadow, minimizing harsh shadows and highlights. Often used in portraits to flatter skin tones."},
	{ID: "cinematic", Label: "Cinematic", Fragment: "cinematic lighting creating mood depth and focus", Tooltip: "Uses light to create mood, depth and atmosphere, guiding the viewer's attention and conveying emotion."},
	{ID: "low-key", Label: "Low-key", Fragment: "low key lighting producing high contrast between light and shadow", Tooltip: "High contrast between light and shadow with emphasis on dark tones, usually a single key light with minimal fill."},
	{ID: "directional", Label: "Directional", Fragment: "highlight the subject with directional lighting", Tooltip: "Focuses light in a specific direction as a concentrated beam, in contrast to diffused lighting."},
	{ID: "balanced", Label: "Balanced", Fragment: "balanced lighting creating a harmonious and visually appealing environment", Tooltip: "Combines different light sources into a harmonious, visually appealing whole."},
	{ID: "backlight", Label: "Backlight", Fragment: "backlight lighting creating a halo or outline effect", Tooltip: "The light source sits behind the subject facing the camera, creating a glowing outline that separates subject from background."},
	{ID: "bokeh", Label: "Bokeh Light Effects", Fragment: "bokeh lighting using quality blurs to enhance the subject", Tooltip: "Emphasizes the aesthetic quality of the blur in out-of-focus areas to enhance the subject."},
	{ID: "colored-gel", Label: "Colored Gel", Fragment: "gel lighting creating mood", Tooltip: "Colored filters in front of the light source modify its color to set mood or correct temperature."},
	{ID: "rembrandt", Label: "Rembrandt", Fragment: "High-contrast Rembrandt lighting", Tooltip: "Creates the distinct triangle of light on one side of the subject's face known as the Rembrandt patch."},
	{ID: "contre-jour", Label: "Contre-Jour", Fragment: "contre-jour lighting creating a back light effect", Tooltip: "The camera points directly toward the light source, creating a dramatic backlighting effect."},
}

var finalTouchOptions = []Option{
	{ID: "high-detail", Label: "High Detail", Fragment: "highly detailed, sharp focus"},
	{ID: "cinematic", Label: "Cinematic", Fragment: "cinematic look, movie still"},
	{ID: "editorial", Label: "Editorial", Fragment: "editorial photography, magazine quality"},
	{ID: "documentary", Label: "Documentary", Fragment: "documentary style, candid"},
	{ID: "fine-art", Label: "Fine Art", Fragment: "fine art photography"},
	{ID: "moody", Label: "Moody", Fragment: "moody atmosphere, dark tones"},
	{ID: "dreamy", Label: "Dreamy", Fragment: "dreamy soft aesthetic"},
	{ID: "gritty", Label: "Gritty", Fragment: "gritty raw aesthetic"},
	{ID: "clean", Label: "Clean", Fragment: "clean crisp aesthetic"},
	{ID: "vintage-look", Label: "Vintage Look", Fragment: "vintage aesthetic, retro color grading"},
	{ID: "desaturated", Label: "Desaturated", Fragment: "desaturated muted colors"},
	{ID: "vibrant", Label: "Vibrant", Fragment: "vibrant saturated colors"},
	{ID: "contrasty", Label: "High Contrast", Fragment: "high contrast"},
	{ID: "soft-contrast", Label: "Soft Contrast", Fragment: "soft low contrast"},
	{ID: "film-grain", Label: "Film Grain", Fragment: "visible film grain"},
	{ID: "noise-free", Label: "Noise Free", Fragment: "clean noise-free image"},
	{ID: "vignette", Label: "Vignette", Fragment: "subtle vignette"},
	{ID: "light-leaks", Label: "Light Leaks", Fragment: "light leaks and flares"},
	{ID: "award-winning", Label: "Award Winning", Fragment: "award winning photography"},
	{ID: "8k", Label: "8K Resolution", Fragment: "8K resolution, ultra high definition"},
}

// DefaultNegativePrompt seeds the negative-prompt text area for new
// editing sessions.
const DefaultNegativePrompt = "[Consistency] Maintain consistent lighting direction, facial proportions, and wardrobe across generations.\n\n[Negative] No extra limbs, no distorted hands, no plastic or waxy skin, no blown highlights, no CGI look, no modern LED lighting, no fantasy elements. Avoid perfectly symmetrical facial features, Natural human facial asymmetry, No over-smoothed skin, no visible AI artifacts, no text or watermarks"

var allCategories = []Category{
	{ID: "style", Label: "Genre", Description: "Visual style of the image", Kind: MultiSelect, Options: genreOptions},
	{ID: "camera", Label: "Type", Description: "Type of camera used", Kind: SingleSelect, Options: cameraTypes, AllowCustom: true},
	{ID: "angles", Label: "Framing", Description: "Shot types and camera angles", Kind: OnePerGroup, Options: cameraAngles},
	{ID: "lensStyle", Label: "Lens Style", Description: "Spherical, Anamorphic, or Vintage", Kind: SingleSelect, Options: lensStyleOptions},
	{ID: "lens", Label: "Lens", Description: "Focal length and lens type", Kind: SingleSelect, Options: lensTypes},
	{ID: "filmStock", Label: "Film Stock", Description: "Film emulation or digital", Kind: SingleSelect, Options: filmStocks},
	{ID: "iso", Label: "ISO", Description: "Sensitivity and grain", Kind: SingleSelect, Options: isoSettings},
	{ID: "aperture", Label: "Aperture", Description: "Depth of field control", Kind: SingleSelect, Options: apertureSettings},
	{ID: "shutter", Label: "Shutter Speed", Description: "Motion and exposure time", Kind: SingleSelect, Options: shutterSpeeds},
	{ID: "action", Label: "Subject(s) / Action(s)", Description: "Define who is in the shot and what they are doing", Kind: FreeText, Options: []Option{}, AllowCustom: true},
	{ID: "wardrobe", Label: "Wardrobe", Description: "Clothing and attire", Kind: FreeText, Options: wardrobeOptions, AllowCustom: true},
	{ID: "environment", Label: "Environment", Description: "Location and setting", Kind: FreeText, Options: environments, AllowCustom: true},
	{ID: "lighting", Label: "Lighting", Description: "Light source and style", Kind: SingleSelect, Options: lightingOptions},
	{ID: "finalTouches", Label: "Negative Prompts", Description: "Instructions of what to AVOID and ENSURE", Kind: FreeText, Options: finalTouchOptions, AllowCustom: true, DefaultCustomValue: DefaultNegativePrompt},
}

// LensStyleFilters narrow the lens catalog; AS-suffixed lenses appear
// under both A and S.
var LensStyleFilters = []Filter{
	{ID: "A", Label: "Anamorphic", Description: "Cinematic wide aspect ratio look with oval bokeh"},
	{ID: "S", Label: "Spherical", Description: "Standard lens with natural circular bokeh"},
	{ID: "M", Label: "Macro", Description: "Extreme close-up detail and magnification"},
	{ID: "T", Label: "Telephoto", Description: "Long focal length for distant subjects"},
}

// CameraTypeFilters narrow the camera body catalog.
var CameraTypeFilters = []Filter{
	{ID: "D", Label: "Digital", Description: "Modern digital cinema cameras"},
	{ID: "F", Label: "Film", Description: "Classic film cameras"},
}

var lensCollection = []Lens{
	{ID: "20mm-a", Name: "20mm Anamorphic", StyleSuffix: "A", Fragment: "20mm anamorphic lens", Tooltip: "Ultra wide anamorphic for dramatic perspectives"},
	{ID: "40mm-a", Name: "40mm Anamorphic", StyleSuffix: "A", Fragment: "40mm anamorphic lens", Tooltip: "Classic anamorphic standard focal length"},
	{ID: "50mm-a", Name: "50mm Anamorphic", StyleSuffix: "A", Fragment: "50mm anamorphic lens", Tooltip: "Versatile anamorphic with natural field of view"},
	{ID: "75mm-a", Name: "75mm Anamorphic", StyleSuffix: "A", Fragment: "75mm anamorphic lens", Tooltip: "Portrait-friendly anamorphic focal length"},
	{ID: "85mm-a", Name: "85mm Anamorphic", StyleSuffix: "A", Fragment: "85mm anamorphic lens", Tooltip: "Classic portrait anamorphic"},
	{ID: "100mm-a", Name: "100mm Anamorphic", StyleSuffix: "A", Fragment: "100mm anamorphic lens", Tooltip: "Tight anamorphic for compressed backgrounds"},
	{ID: "135mm-a", Name: "135mm Anamorphic", StyleSuffix: "A", Fragment: "135mm anamorphic lens", Tooltip: "Telephoto anamorphic for cinematic compression"},
	{ID: "150mm-a", Name: "150mm Anamorphic", StyleSuffix: "A", Fragment: "150mm anamorphic lens", Tooltip: "Long anamorphic for dramatic isolation"},
	{ID: "200mm-a", Name: "200mm Anamorphic", StyleSuffix: "A", Fragment: "200mm anamorphic lens", Tooltip: "Super telephoto anamorphic"},
	{ID: "35mm-s", Name: "35mm Standard", StyleSuffix: "S", Fragment: "35mm spherical lens", Tooltip: "Classic standard spherical lens"},
	{ID: "50mm-s", Name: "50mm Spherical", StyleSuffix: "S", Fragment: "50mm spherical lens", Tooltip: "Nifty fifty - versatile standard lens"},
	{ID: "6mm-fisheye", Name: "6mm Fisheye", StyleSuffix: "AS", Fragment: "6mm fisheye lens", Tooltip: "Extreme fisheye for creative distortion"},
	{ID: "8mm-fisheye", Name: "8mm Fisheye", StyleSuffix: "AS", Fragment: "8mm fisheye lens", Tooltip: "Wide fisheye with barrel distortion"},
	{ID: "14mm-ultrawide", Name: "14mm Ultra Wide", StyleSuffix: "AS", Fragment: "14mm ultra wide lens", Tooltip: "Ultra wide angle for expansive scenes"},
	{ID: "35mm-m", Name: "35mm Macro", StyleSuffix: "M", Fragment: "35mm macro lens", Tooltip: "Wide angle macro for environmental close-ups"},
	{ID: "60mm-m", Name: "60mm Macro", StyleSuffix: "M", Fragment: "60mm macro lens", Tooltip: "Standard macro for detailed close-ups"},
	{ID: "100mm-m", Name: "100mm Macro", StyleSuffix: "M", Fragment: "100mm macro lens", Tooltip: "Classic macro for 1:1 reproduction"},
	{ID: "150mm-m", Name: "150mm Macro", StyleSuffix: "M", Fragment: "150mm macro lens", Tooltip: "Long macro for working distance"},
	{ID: "400mm-t", Name: "400mm Telephoto", StyleSuffix: "T", Fragment: "400mm super telephoto lens", Tooltip: "Super telephoto for wildlife and sports"},
}

var cameraCollection = []CameraBody{
	{ID: "arri-alexa", Name: "ARRI Alexa", TypeSuffix: "D", Fragment: "shot on ARRI Alexa", Tooltip: "Industry standard digital cinema camera with natural color science"},
	{ID: "canon-mark-iv", Name: "Canon Mark IV", TypeSuffix: "D", Fragment: "shot on Canon EOS 5D Mark IV", Tooltip: "Popular DSLR for hybrid photo/video work"},
	{ID: "canon-c300-iii", Name: "Canon C300 III", TypeSuffix: "D", Fragment: "shot on Canon EOS C300 Mark III", Tooltip: "Professional cinema camera with Dual Gain Output"},
	{ID: "imax", Name: "IMAX", TypeSuffix: "D", Fragment: "shot on IMAX camera", Tooltip: "Large format cinema for maximum resolution and immersion"},
	{ID: "red", Name: "RED", TypeSuffix: "D", Fragment: "shot on RED camera", Tooltip: "High resolution digital cinema with RAW recording"},
	{ID: "sony-fx9", Name: "Sony FX9", TypeSuffix: "D", Fragment: "shot on Sony FX9", Tooltip: "Full-frame cinema camera with fast autofocus"},
	{ID: "sony-venice", Name: "Sony Venice", TypeSuffix: "D", Fragment: "shot on Sony Venice", Tooltip: "High-end cinema camera with beautiful color reproduction"},
	{ID: "ursa-mini-pro", Name: "URSA Mini Pro 4.6K", TypeSuffix: "D", Fragment: "shot on Blackmagic URSA Mini Pro 4.6K", Tooltip: "Versatile cinema camera with built-in ND filters"},
	{ID: "arriflex-16sr", Name: "Arriflex 16SR", TypeSuffix: "F", Fragment: "shot on Arriflex 16SR", Tooltip: "Classic Super 16mm film camera for documentary and indie films"},
	{ID: "panaflex-millennium", Name: "Panaflex Millennium", TypeSuffix: "F", Fragment: "shot on Panaflex Millennium", Tooltip: "Legendary 35mm film camera used on countless features"},
	{ID: "panavision-panaflex", Name: "Panavision Panaflex", TypeSuffix: "F", Fragment: "shot on Panavision Panaflex", Tooltip: "Iconic Hollywood film camera with distinctive look"},
}

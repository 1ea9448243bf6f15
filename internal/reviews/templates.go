package reviews

// reviewTemplates hold interchangeable phrasings per rating. Slots: {dishes}
// is the conjoined dish-name list, {highlight} one dish from the order.
var reviewTemplates = map[int][]string{
	5: {
		"Absolutely amazing {dishes}! The {highlight} was cooked to perfection. Fresh ingredients and authentic flavors. Highly recommend!",
		"Outstanding experience! The {dishes} exceeded all expectations. {highlight} was the star of the meal. Will definitely order again!",
		"Best Indian food in UAE! {dishes} were incredible. {highlight} had the perfect balance of spices. Five stars!",
		"Exceptional quality! Ordered {dishes} and everything was delicious. The {highlight} melted in my mouth. Perfect!",
		"Wow! Just wow! {dishes} were all fantastic. {highlight} was particularly memorable. Can't wait to order again!",
		"Hands down the best {highlight} I've ever had! {dishes} were all prepared beautifully. Fresh and flavorful!",
		"Incredible meal! {dishes} arrived hot and fresh. The {highlight} was absolutely divine. Highly satisfied!",
		"Perfect in every way! {dishes} were all excellent. {highlight} stood out with its rich, authentic taste.",
	},
	4: {
		"Really good {dishes}! The {highlight} was delicious. Slight delay in delivery but food quality made up for it.",
		"Great food overall. {dishes} were tasty, especially the {highlight}. Would order again!",
		"Enjoyed the {dishes}! {highlight} was very good. Portion sizes were generous. Recommend!",
		"Solid experience. {dishes} were well-prepared. {highlight} had great flavor. Minor issues with packaging.",
		"Very satisfied! {dishes} were fresh and flavorful. {highlight} was the standout dish.",
		"Good quality food. {dishes} were nicely done. {highlight} could have been slightly spicier but still good!",
		"Pleasant meal! {dishes} arrived warm. {highlight} was tasty though not exceptional. Would order again.",
	},
	3: {
		"Decent food but nothing special. {dishes} were okay. {highlight} lacked the punch I expected.",
		"Average experience. {dishes} were fine but {highlight} was a bit bland. Room for improvement.",
		"Mixed feelings. {dishes} were acceptable. {highlight} was decent but portion was small for the price.",
		"It was okay. {dishes} arrived lukewarm. {highlight} tasted fine but could be better.",
		"Not bad, not great. {dishes} were edible. {highlight} needed more seasoning.",
		"Mediocre. {dishes} were fine but forgettable. {highlight} didn't stand out.",
	},
	2: {
		"Disappointed with {dishes}. {highlight} was cold when it arrived. Not worth the money.",
		"Below expectations. {dishes} were underwhelming. {highlight} was overcooked and dry.",
		"Not good. {dishes} arrived late and cold. {highlight} had barely any flavor. Poor quality.",
		"Unsatisfactory. {dishes} were not fresh. {highlight} tasted reheated. Won't order again.",
		"Poor experience. {dishes} were disappointing. {highlight} was burnt on the edges. Very unhappy.",
		"Expected better. {dishes} were subpar. {highlight} was too oily and greasy. Stomach upset followed.",
	},
	1: {
		"Terrible experience! {dishes} were all inedible. {highlight} was completely burnt. Waste of money!",
		"Absolutely horrible! {dishes} arrived ice cold after 2 hour delay. {highlight} was spoiled. Disgusting!",
		"Worst food ever! {dishes} were all wrong. {highlight} made me sick. Never ordering again!",
		"Disaster! {dishes} were all stale. {highlight} had a weird smell. Completely unacceptable!",
		"Appalling quality! {dishes} were swimming in oil. {highlight} was raw inside. Health hazard!",
		"Shocking! {dishes} bore no resemblance to the menu description. {highlight} was inedible. Refund demanded!",
	},
}

package motivation

// The six phrase banks below are the provided message strings and are part of
// the deterministic library contract: reordering or editing them changes
// which message every date maps to.

var openings = []string{
	"Aujourd'hui, ton coeur merite une parole douce.",
	"Ce matin, tu peux te parler avec respect.",
	"Tu n'as rien a prouver pour meriter la bienveillance.",
	"Ta valeur reste entiere, meme dans les jours lourds.",
	"Commence par te traiter comme une personne que tu aimes.",
	"Tu peux avancer sans te maltraiter.",
	"Respire: tu as le droit d'exister sans performance.",
	"Ta dignite ne depend pas de ta productivite.",
	"Aujourd'hui, sois d'abord ton propre refuge.",
	"Tu as le droit d'etre en construction.",
	"Tu peux ralentir sans abandonner ton chemin.",
	"Le calme et le courage peuvent coexister en toi.",
	"Tu peux repartir d'un pas minuscule et sincere.",
	"Ton histoire ne se resume pas a ce moment difficile.",
	"Tu as le droit de poser ton sac mental un instant.",
	"Tu n'es pas en retard, tu es en train de te reconstruire.",
	"Prends cet instant pour revenir a toi.",
	"Meme fatigue, tu restes digne de respect.",
	"Ta sensibilite est une force en apprentissage.",
	"Tu as le droit de recommencer encore.",
	"Rien n'efface ta valeur humaine aujourd'hui.",
	"Cette journee peut etre douce, meme imparfaite.",
	"Tu peux honorer ton rythme sans culpabiliser.",
	"Ta presence compte, meme quand ton energie baisse.",
	"Tu merites un dialogue interieur plus tendre.",
	"Tu as le droit d'etre fragile et courageux(se) a la fois.",
}

var emotionAcknowledgements = []string{
	"Si la tristesse est la, elle a le droit d'etre entendue.",
	"Si ton esprit est bruyant, tu peux choisir une respiration calme.",
	"Si tu te sens vide, ce ressenti ne definit pas ton avenir.",
	"Si tout semble lourd, tu peux reduire la journee a une seule etape.",
	"Si la motivation manque, commence sans attendre l'envie parfaite.",
	"Si tu te sens seul(e), rappelle-toi que demander du lien est legitime.",
	"Si la honte monte, observe-la sans la laisser decider pour toi.",
	"Si l'anxiete serre, pose une main sur ton coeur et reviens au present.",
	"Si la fatigue mentale t'ecrase, ton besoin de pause est valable.",
	"Si la culpabilite tourne en boucle, choisis aujourd'hui la douceur utile.",
	"Si tu te sens bloque(e), un petit mouvement peut rouvrir l'elan.",
	"Si tu doutes de toi, ton doute n'est pas la verite complete.",
	"Si tu traverses une periode depressive, avance en gestes tres simples.",
	"Si tu n'as plus gout a rien, commence par une action de 5 minutes.",
	"Si tes pensees deviennent sombres, tu peux chercher un appui maintenant.",
	"Si tu te compares, reviens a ta route et a tes besoins reels.",
	"Si tu as l'impression d'echouer, regarde ce que tu tiens encore debout.",
	"Si ton coeur est serre, ralentir est un acte de lucidite.",
	"Si tu as peur du futur, choisis une decision soutenante pour aujourd'hui.",
	"Si tu te sens epuisé(e), protege ton energie avant de te juger.",
	"Si tu as envie de disparaitre du bruit, cree un espace de calme.",
	"Si tu te sens en retard, souviens-toi que chaque rythme est humain.",
	"Si tu pleures facilement, cela dit ton besoin de soin, pas une faiblesse.",
	"Si tu as honte de souffrir, rappelle-toi que la souffrance est humaine.",
	"Si l'obscurite interne dure, tu as le droit d'etre accompagne(e).",
	"Si la tristesse persiste depuis des semaines, parler a un pro est une force.",
}

var autonomyReframes = []string{
	"Tu peux choisir une limite saine qui protege ta paix.",
	"Tu peux decider ce que tu n'acceptes plus dans ton dialogue interieur.",
	"Tu peux dire non a l'exces et oui a l'essentiel.",
	"Tu peux reprendre la main avec une decision claire et realiste.",
	"Tu peux construire ta stabilite pas a pas.",
	"Tu peux honorer ton corps, ton temps et ton attention.",
	"Tu peux definir une priorite et la traiter avec douceur.",
	"Tu peux te donner l'autorisation d'apprendre sans te punir.",
	"Tu peux transformer la pression en plan simple.",
	"Tu peux choisir la constance plutot que la perfection.",
	"Tu peux garder ton cap meme dans une petite vitesse.",
	"Tu peux t'offrir la meme compassion qu'a un ami.",
	"Tu peux faire un choix autonome aligne avec tes valeurs.",
	"Tu peux sortir du pilote automatique par une action consciente.",
	"Tu peux te respecter dans tes besoins, meme invisibles.",
	"Tu peux te proteger des voix qui te diminuent.",
	"Tu peux te redonner de la puissance en simplifiant.",
	"Tu peux te rappeler que ton identite depasse tes resultats.",
	"Tu peux agir avec fermete sans devenir dur(e) envers toi.",
	"Tu peux reajuster ton objectif plutot que t'abandonner.",
	"Tu peux poser un cadre et respirer dedans.",
	"Tu peux choisir la patience active.",
	"Tu peux faire de ta sante mentale une priorite legitime.",
	"Tu peux decider de te parler avec verite et dignite.",
	"Tu peux avancer en restant loyal(e) a toi.",
	"Tu peux devenir ton propre allié(e) quotidien.",
}

var selfCareActions = []string{
	"Bois un verre d'eau puis ecris trois phrases sinceres sur ton etat.",
	"Fais une marche de 10 minutes pour relancer ton systeme nerveux.",
	"Mets un minuteur de 5 minutes et commence la premiere micro-tache.",
	"Mange quelque chose de nourrissant avant de reprendre.",
	"Range un petit espace pour clarifier ton esprit.",
	"Envoie un message court a une personne de confiance.",
	"Planifie une seule priorite pour aujourd'hui, pas dix.",
	"Fais une pause ecran et regarde au loin pendant une minute.",
	"Ecris une phrase de gratitude realiste, meme minuscule.",
	"Reviens a ton souffle avec 4 respirations lentes.",
	"Fais la version la plus petite de ce que tu repousses.",
	"Prends une douche chaude ou froide pour marquer un nouveau depart.",
	"Mets ton telephone en mode concentration pour 20 minutes.",
	"Pose une alarme sommeil pour proteger ta nuit.",
	"Ajoute une activite qui te recharge vraiment aujourd'hui.",
	"Fractionne ton objectif en premiere etape concretement faisable.",
	"Si tu n'as pas d'elan, avance juste de deux minutes.",
	"Mets une musique apaisante et relache les epaules.",
	"Remplace une auto-critique par une phrase de soutien.",
	"Coche une tache simple pour retrouver de la traction.",
	"Prends l'air meme brievement pour debloquer ton mental.",
	"Prepare ton environnement pour te faciliter demain.",
	"Choisis une action qui protege ton energie emotionnelle.",
	"Rappelle-toi: une petite action vaut mieux que l'attente parfaite.",
	"Prends un repas a heure reguliere pour stabiliser ton corps.",
	"Inscris un rendez-vous de soutien si tu sens que c'est necessaire.",
}

var supportReminders = []string{
	"Rester en lien aide souvent a traverser les jours bas.",
	"Parler de ce que tu ressens peut alleger la charge.",
	"Demander de l'aide n'enleve rien a ton autonomie, ca la renforce.",
	"Un accompagnement professionnel peut vraiment faire une difference.",
	"Tu n'as pas a tout porter seul(e).",
	"Les soins psychologiques sont un acte de responsabilite envers toi.",
	"Si les symptomes durent, consulte un professionnel de sante mentale.",
	"Chercher du soutien est une competence, pas une faiblesse.",
	"Ton entourage de confiance peut etre un appui concret.",
	"Tu peux combiner auto-compassion et aide exterieure.",
	"Etre accompagne(e) peut accelerer ton retablissement.",
	"Quand la detresse monte, priorise la securite avant tout.",
	"Si tu te sens en danger de te faire du mal, contacte le 988 ou les urgences immediatement.",
	"Aux Etats-Unis, le 988 est disponible 24h/24 pour le soutien de crise.",
	"Si la douleur devient trop intense, parle a quelqu'un maintenant.",
	"Ton besoin d'aide est legitime et respectable.",
	"Tu as le droit d'avoir un plan de soutien clair.",
	"La connexion humaine est un vrai facteur de protection.",
}

var closings = []string{
	"Tu progresses plus que tu ne le vois.",
	"Ton futur peut encore changer en ta faveur.",
	"Tu fais deja quelque chose d'important en restant present(e).",
	"Ta constance douce construit une vraie force.",
	"Cette journee compte dans ton histoire de guerison.",
	"Tu peux finir cette journee avec dignite.",
	"Tu es en train d'apprendre a te choisir.",
	"Reste proche de toi, c'est deja une victoire.",
	"Tu merites de la paix et de la clarte.",
	"Ton courage existe meme quand il est silencieux.",
	"Tu as le droit d'etre fier(e) de tes petits pas.",
	"Chaque pas sincere te rapproche d'un mieux.",
	"Tu n'es pas casse(e), tu es humain(e).",
	"Ton coeur merite patience et respect.",
	"Rien n'est fige, surtout pas toi.",
	"Tu peux te reconstruire sans te brusquer.",
	"La douceur envers toi est une strategie solide.",
	"Continue, meme lentement, continue.",
	"Tu as en toi les ressources pour traverser.",
	"Ta valeur ne fluctue pas avec ton humeur du jour.",
	"Sois loyal(e) a ton bien-etre.",
	"Tu peux faire de cette date un repere de soin.",
	"Merci de ne pas t'abandonner aujourd'hui.",
	"Tu peux te relever sans te violenter.",
	"Ce pas, meme petit, est un vrai oui a ta vie.",
	"Tu as le droit de croire en ton retour a la lumiere.",
}
